package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/townmi/reedsolomon"
)

func main() {
	var numEC int
	var hexInput bool

	app := &cli.App{
		Name:  "rsenc",
		Usage: "rsenc computes QR code Reed-Solomon error correction codewords",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "ec",
				Aliases:     []string{"e"},
				Usage:       "number of error correction codewords",
				Value:       10,
				Destination: &numEC,
			},
			&cli.BoolFlag{
				Name:        "hex",
				Aliases:     []string{"x"},
				Usage:       "interpret the message argument as hex encoded bytes",
				Destination: &hexInput,
			},
		},
		ArgsUsage: "message",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("no message given")
			}

			message := []byte(c.Args().Get(0))
			if hexInput {
				var err error
				message, err = hex.DecodeString(c.Args().Get(0))
				checkError(err)
			}

			ec, err := reedsolomon.ComputeErrorCorrection(message, numEC)
			checkError(err)

			fmt.Println(hex.EncodeToString(ec))
			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func checkError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
