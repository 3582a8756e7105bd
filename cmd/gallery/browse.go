package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/status-im/status-gallery/services/gallery"
	"github.com/status-im/status-gallery/services/wallet/async"
)

const browseHelp = `commands:
  n, next          next token
  p, prev          previous token
  s <id>           type into the search box
  <enter>          go to the token in the search box
  g <id>           go to a token
  d [svg|png]      download the current token
  r                rescan
  q                quit`

func browse(cCtx *cli.Context) error {
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

	api := gallery.NewAPI(s.service, config.Assets.DownloadDir)
	if _, err := api.Connect(ctx, account.Hex()); err != nil {
		return err
	}
	st, err := s.waitForScan(ctx)
	if err != nil {
		return err
	}
	printState(st)
	if !st.Found {
		return nil
	}

	group := async.NewGroup(ctx)
	defer func() {
		group.Stop()
		group.Wait()
	}()
	group.Add(func(ctx context.Context) error {
		printEvents(ctx, s)
		return nil
	})

	fmt.Println(browseHelp)
	lines := make(chan string)
	go readLines(ctx, lines)

	for {
		fmt.Print("> ")
		var line string
		select {
		case <-ctx.Done():
			return nil
		case l, ok := <-lines:
			if !ok {
				return nil
			}
			line = strings.TrimSpace(l)
		}

		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "n", "next":
			printState(api.Next(ctx))
		case "p", "prev":
			printState(api.Prev(ctx))
		case "s":
			fmt.Printf("search: %q\n", api.SetSearch(ctx, arg))
		case "":
			if !s.service.SubmitSearch() {
				fmt.Println("not found")
			}
			printState(api.GetState(ctx))
		case "g", "go":
			st, err := api.SelectToken(ctx, arg)
			if err != nil {
				fmt.Println(err)
			}
			printState(st)
		case "d":
			if arg == "" {
				arg = string(gallery.FormatSVG)
			}
			path, err := api.DownloadAsset(ctx, arg)
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Println("saved", path)
		case "r":
			if err := api.Rescan(ctx); err != nil {
				fmt.Println(err)
			}
		case "q", "quit", "exit":
			return nil
		default:
			fmt.Println(browseHelp)
		}
	}
}

func readLines(ctx context.Context, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
}

// printEvents reports rescans and live owner lookups as they complete.
func printEvents(ctx context.Context, s *session) {
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-s.events:
			switch e.Type {
			case gallery.EventScanProgress:
				fmt.Printf("\r%s", e.Message)
			case gallery.EventScanFinished, gallery.EventScanFailed:
				fmt.Println()
				printState(e.EventParams.(gallery.State))
				fmt.Print("> ")
			case gallery.EventOwnerUpdated:
				st := e.EventParams.(gallery.State)
				if st.Owner == nil {
					continue
				}
				suffix := ""
				if st.OwnedByYou {
					suffix = " (you)"
				}
				fmt.Printf("\n#%s owner: %s%s\n> ", st.CurrentID, gallery.ShortAddress(st.Owner.Hex()), suffix)
			case gallery.EventDownloadFailed:
				logger.Warnw("download failed", "message", e.Message)
			}
		}
	}
}

func printState(st gallery.State) {
	if st.Status != "" {
		fmt.Println(st.Status)
		return
	}
	if st.CurrentID == "" {
		return
	}
	fmt.Printf("%s\n#%s %s\n", st.Caption, st.CurrentID, st.ImageURL)
}
