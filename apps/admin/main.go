package main

import (
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/kokoro/core"
	"github.com/trezcool/kokoro/core/dashboard"
	"github.com/trezcool/kokoro/core/emotion"
	inmemdb "github.com/trezcool/kokoro/storage/database/inmem"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	db, err := inmemdb.Open()
	errAndDie(err)

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	emotion.InitValidators(validate, translator)

	// start CLI
	cli := commandLine{
		conf:     conf,
		svc:      dashboard.NewService(inmemdb.NewDatasetRepository(db), emotion.NewVariates(nil)),
		validate: validate,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
