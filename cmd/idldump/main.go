// Copyright 2024 The go-solana Authors
// This file is part of the go-solana library.

// Command idldump decodes an on-chain IDL container file and prints its
// schema summary: the program's IDL address derived under each known
// provider, and every named type, account, and instruction it defines.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/cielu/go-solana-idl/common"
	"github.com/cielu/go-solana-idl/idl"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: idldump <idl-container-file> <program-id>")
		os.Exit(2)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fatal("read %s: %v", os.Args[1], err)
	}
	program := common.StrToAddress(os.Args[2])

	container, err := idl.UnpackContainer(data)
	if err != nil {
		fatal("unpack container: %v", err)
	}

	cyan := color.New(color.FgHiCyan).SprintFunc()
	green := color.New(color.FgHiGreen).SprintFunc()
	yellow := color.New(color.FgHiYellow).SprintFunc()

	fmt.Printf("%s %s (authority %s)\n", cyan("idl:"), green(container.Idl.Name), container.Authority.Base58())

	for _, provider := range idl.Providers {
		addr, err := idl.TryAddress(program, provider)
		if err != nil {
			continue
		}
		fmt.Printf("%s %s address: %s\n", yellow("derived"), provider, addr.Base58())
	}

	fmt.Printf("%s (%d)\n", cyan("types"), len(container.Idl.Types))
	for _, t := range container.Idl.Types {
		fmt.Printf("  %s\n", t.Name)
	}

	fmt.Printf("%s (%d)\n", cyan("accounts"), len(container.Idl.Accounts))
	for _, a := range container.Idl.Accounts {
		fmt.Printf("  %s\n", a.Name)
	}

	fmt.Printf("%s (%d)\n", cyan("instructions"), len(container.Idl.Instructions))
	for _, ix := range container.Idl.Instructions {
		fmt.Printf("  %s\n", ix.Name)
	}
}

func fatal(format string, args ...any) {
	red := color.New(color.FgHiRed).SprintFunc()
	fmt.Fprintln(os.Stderr, red(fmt.Sprintf(format, args...)))
	os.Exit(1)
}
