package dnd5e

import "github.com/rs/zerolog"

var log = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Str("component", "dnd5e").Logger()
