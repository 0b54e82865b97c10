// Package server exposes the formatter over HTTP.
//
// The service answers a single JSON endpoint used by editors and browser
// clients:
//
//	POST /api/format-sql
//	{"sql": "select a, b from t", "style": {"case": "lower"}}
//
//	200 OK
//	{"formattedSql": "select a\n     , b from t", "diagnostics": []}
//
// The optional "style" object overrides options of the server's base style
// using the same camelCase names as sqlstyle.yaml. GET /healthz answers 200
// once the listener is up.
package server
