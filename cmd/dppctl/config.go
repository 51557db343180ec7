package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-dpp/dpp"
)

var configFlags = flag.NewFlagSet("config", flag.ContinueOnError)

var (
	configFile = configFlags.String("file", "", "path to a DPP configuration object JSON file to validate ('-' for stdin)")
	configSSID = configFlags.String("emit-ssid", "", "emit a configuration object for the given SSID")
	configPass = configFlags.String("emit-pass", "", "passphrase to use with -emit-ssid")
)

func runConfig() error {
	if *configFile != "" {
		var data []byte
		var err error
		if *configFile == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(*configFile)
		}
		if err != nil {
			return err
		}
		c, err := dpp.ParseConfigurationObject(data)
		if err != nil {
			return err
		}
		fmt.Printf("ssid: %s\n", c.SSID)
		fmt.Printf("akm: %s\n", c.AKM)
		return nil
	}

	if *configSSID != "" {
		c := &dpp.Configuration{SSID: *configSSID, AKM: dpp.AKMSAE, Passphrase: *configPass}
		data, err := c.ToJSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	configFlags.Usage()
	return fmt.Errorf("one of -file or -emit-ssid is required")
}
