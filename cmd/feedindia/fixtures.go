package main

import (
	"fmt"

	"feedindia/internal/seed"

	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"
)

var fixturesCommand = &cli.Command{
	Name:  "fixtures",
	Usage: "Print the built-in fixture data",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "set",
			Aliases: []string{"s"},
			Usage:   "Fixture set to print: donations, accounts or user-donations",
			Value:   "donations",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
		},
	},
	Action: func(c *cli.Context) error {
		printer := pp.New()
		printer.SetColoringEnabled(!c.Bool("no-color"))

		switch c.String("set") {
		case "donations":
			printer.Println(seed.Donations())
		case "accounts":
			printer.Println(seed.Accounts())
		case "user-donations":
			printer.Println(seed.DonationsByUser())
		default:
			return fmt.Errorf("unknown fixture set %q", c.String("set"))
		}

		return nil
	},
}
