package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/kokoro/core"
	"github.com/trezcool/kokoro/core/dashboard"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	conf     *core.Config
	svc      *dashboard.Service
	validate *validator.Validate
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  seed [-students N] [-days N] [-pattern PATTERN] [-seasonal] - generate a demo dataset and print its overview")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	seedStudents := seedCmd.Int("students", 0, "Class size; defaults to the configured demo size.")
	seedDays := seedCmd.Int("days", 0, "Period length in days; defaults to the configured demo period.")
	seedPattern := seedCmd.String("pattern", "", "Distribution pattern: normal|bimodal|stress|happy.")
	seedSeasonal := seedCmd.Bool("seasonal", cli.conf.Demo.SeasonalEffects, "Apply seasonal effects.")

	switch args[1] {
	case "seed":
		if err := seedCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.seed(*seedStudents, *seedDays, *seedPattern, *seedSeasonal)
	default:
		cli.printUsage()
		return errHelp
	}
}
