package main

import (
	"context"
	"os"

	"github.com/Pandentia/contactbot/contactbot/sheets"
	"github.com/rs/zerolog"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	app := kingpin.New("sheet-append", "Appends one row to the first worksheet of a Google spreadsheet")

	credentials := app.Flag("credentials", "The service account credential file").Envar("GOOGLE_APPLICATION_CREDENTIALS").Default("credentials.json").Short('c').String()
	sheetURL := app.Flag("sheet-url", "The spreadsheet URL").Envar("SHEET_URL").Required().String()
	values := app.Arg("values", "The cell values of the row").Required().Strings()

	verbose := app.Flag("verbose", "Enables debug logging").Short('v').Bool()
	pretty := app.Flag("pretty", "Enables pretty logging").Short('p').Bool()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *pretty {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	ctx := context.Background()
	appender := &sheets.Appender{Logger: logger}
	if err := appender.New(ctx, *credentials); err != nil {
		logger.Fatal().Err(err).Msg("Error initializing Sheets client.")
	}

	row := make([]interface{}, len(*values))
	for i, v := range *values {
		row[i] = v
	}
	if err := appender.AppendRow(ctx, *sheetURL, row); err != nil {
		logger.Fatal().Err(err).Msg("Error appending row.")
	}
	logger.Info().Int("cells", len(row)).Msg("Row appended")
}
