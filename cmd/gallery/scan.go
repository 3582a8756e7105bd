package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-ethereum/event"

	"github.com/status-im/status-gallery/params"
	"github.com/status-im/status-gallery/rpc"
	"github.com/status-im/status-gallery/services/gallery"
	"github.com/status-im/status-gallery/services/wallet/walletevent"
)

// session is a gallery service together with its event subscription.
type session struct {
	service *gallery.Service
	events  chan walletevent.Event
	sub     event.Subscription
}

func newSession(ctx context.Context, config *params.Config, rpcClient *rpc.Client) (*session, error) {
	feed := &event.Feed{}
	events := make(chan walletevent.Event, 100)
	sub := feed.Subscribe(events)

	service, err := gallery.NewServiceFromConfig(ctx, config, rpcClient, feed)
	if err != nil {
		sub.Unsubscribe()
		return nil, err
	}
	return &session{service: service, events: events, sub: sub}, nil
}

func (s *session) close() {
	s.service.Stop()
	s.sub.Unsubscribe()
}

// waitForScan prints progress until the running scan ends and returns the final state.
func (s *session) waitForScan(ctx context.Context) (gallery.State, error) {
	for {
		select {
		case <-ctx.Done():
			return gallery.State{}, ctx.Err()
		case err := <-s.sub.Err():
			return gallery.State{}, err
		case e := <-s.events:
			switch e.Type {
			case gallery.EventScanStarted:
				fmt.Fprintln(os.Stderr, gallery.StatusScanning)
			case gallery.EventScanProgress:
				fmt.Fprintf(os.Stderr, "\r%s", e.Message)
			case gallery.EventScanFailed:
				fmt.Fprintln(os.Stderr)
				st := e.EventParams.(gallery.State)
				return st, errors.New(st.Status)
			case gallery.EventScanFinished:
				fmt.Fprintln(os.Stderr)
				return e.EventParams.(gallery.State), nil
			}
		}
	}
}

func scan(cCtx *cli.Context) error {
	config, rpcClient, err := prepare(cCtx)
	if err != nil {
		return err
	}
	defer rpcClient.Close()

	stopMetrics := startMetrics(config)
	defer stopMetrics()

	ctx, cancel := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	account, err := resolveAddress(ctx, config, cCtx.String(AddressFlag))
	if err != nil {
		return err
	}

	s, err := newSession(ctx, config, rpcClient)
	if err != nil {
		return err
	}
	defer s.close()

	if chainClient, err := rpcClient.EthClient(config.ChainID); err == nil {
		if block, err := chainClient.BlockNumber(ctx); err == nil {
			logger.Infow("scanning collection", "contract", config.Collection.ContractAddress, "block", block)
		}
	}

	s.service.SetAccount(true, account)
	st, err := s.waitForScan(ctx)
	if err != nil {
		return err
	}

	if !st.Found {
		fmt.Println(st.Status)
		return nil
	}
	fmt.Printf("%s owns %d tokens:\n", gallery.ShortAddress(account.Hex()), len(st.OwnedIDs))
	fmt.Println(strings.Join(st.OwnedIDs, "\n"))
	return nil
}
