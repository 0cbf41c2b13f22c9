package api

import "github.com/rs/zerolog"

var log = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Str("component", "api").Logger()
