// Package cookiex parses raw Cookie headers with a fixed, explicit
// algorithm: split on ';', trim each pair, split on the first '=',
// percent-decode the value. The session resolver depends on this exact
// behaviour, including values the net/http cookie parser would reject.
package cookiex

import (
	"net/url"
	"strings"
)

// Parse maps cookie names to values from a raw Cookie header.
//
// A pair without '=' maps the bare name to an empty value. A value that
// fails percent-decoding is kept in its raw form. Later duplicates of a
// name overwrite earlier ones.
func Parse(header string) map[string]string {
	cookies := make(map[string]string)
	if header == "" {
		return cookies
	}

	for _, pair := range strings.Split(header, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		name, value, _ := strings.Cut(pair, "=")
		if decoded, err := url.PathUnescape(value); err == nil {
			value = decoded
		}
		cookies[name] = value
	}
	return cookies
}
