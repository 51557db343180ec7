package main

import (
	"crypto/rand"
	"flag"
	"fmt"

	"github.com/go-dpp/dpp"
	"github.com/go-dpp/dpp/dppcrypto/ecc"
)

var uriFlags = flag.NewFlagSet("uri", flag.ContinueOnError)

var (
	uriParse    = uriFlags.String("parse", "", "parse a DPP: bootstrapping URI and print its fields")
	uriGenerate = uriFlags.Bool("generate", false, "generate a fresh P-256 bootstrapping URI")
)

func runURI() error {
	if *uriParse != "" {
		info, err := dpp.ParseURI(*uriParse)
		if err != nil {
			return err
		}
		fmt.Printf("curve: %s\n", info.BootPublic.Curve())
		if info.HasMAC {
			fmt.Printf("mac: %x\n", info.MAC)
		}
		if info.HasVersion {
			fmt.Printf("version: %d\n", info.Version)
		}
		if len(info.Freqs) > 0 {
			fmt.Printf("freqs: %v\n", info.Freqs)
		}
		return nil
	}

	if *uriGenerate {
		s, err := ecc.NewScalarRandom(rand.Reader, ecc.P256)
		if err != nil {
			return err
		}
		p, err := s.Public()
		if err != nil {
			return err
		}
		uri, err := dpp.GenerateURI(p, 2, nil, nil, "", "")
		if err != nil {
			return err
		}
		fmt.Println(uri)
		return nil
	}

	uriFlags.Usage()
	return fmt.Errorf("one of -parse or -generate is required")
}
