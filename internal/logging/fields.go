package logging

import (
	"log/slog"
	"time"
)

// Structured field keys shared by every package that logs.
const (
	FieldService        = "service"
	FieldVersion        = "version"
	FieldProvider       = "provider"
	FieldRequestID      = "request_id"
	FieldPath           = "path"
	FieldMethod         = "method"
	FieldStatusCode     = "status_code"
	FieldPokemonID      = "pokemon_id"
	FieldLookup         = "lookup"
	FieldCount          = "count"
	FieldDurationMS     = "duration_ms"
	FieldUpstreamStatus = "upstream_status"
)

func Provider(name string) slog.Attr { return slog.String(FieldProvider, name) }

func RequestID(id string) slog.Attr { return slog.String(FieldRequestID, id) }

func Lookup(name string) slog.Attr { return slog.String(FieldLookup, name) }

func PokemonID(id int) slog.Attr { return slog.Int(FieldPokemonID, id) }

func Count(n int) slog.Attr { return slog.Int(FieldCount, n) }

// Elapsed records d in whole milliseconds under FieldDurationMS.
func Elapsed(d time.Duration) slog.Attr { return slog.Int64(FieldDurationMS, d.Milliseconds()) }

func serviceAttrs(service, version string) []slog.Attr {
	var attrs []slog.Attr
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}
