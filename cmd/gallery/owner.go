package main

import (
	"fmt"
	"math/big"

	"github.com/urfave/cli/v2"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"

	"github.com/status-im/status-gallery/contracts"
	"github.com/status-im/status-gallery/services/gallery"
)

func owner(cCtx *cli.Context) error {
	config, rpcClient, err := prepare(cCtx)
	if err != nil {
		return err
	}
	defer rpcClient.Close()

	id := cCtx.String(TokenFlag)
	tokenID, ok := new(big.Int).SetString(id, 10)
	tokenRange := gallery.TokenRange{Min: config.Collection.MinTokenID, Max: config.Collection.MaxTokenID}
	if !ok || !tokenID.IsUint64() || !tokenRange.Contains(tokenID.Uint64()) {
		return fmt.Errorf("token ID %q is outside %d..%d", id, tokenRange.Min, tokenRange.Max)
	}

	maker, err := contracts.NewContractMaker(rpcClient)
	if err != nil {
		return err
	}
	caller, err := maker.NewERC721Caller(config.ChainID, config.ContractAddress())
	if err != nil {
		return err
	}

	address, err := caller.OwnerOf(&bind.CallOpts{Context: cCtx.Context}, tokenID)
	if err != nil {
		return err
	}
	fmt.Printf("#%s owned by %s (%s)\n", tokenID, gallery.ShortAddress(address.Hex()), address.Hex())
	return nil
}
