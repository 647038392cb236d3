package redpool

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/gomodule/redigo/redis"
)

// Args is an ordered list of command arguments. Each argument is encoded
// independently; see redis.Args for the builder methods.
type Args = redis.Args

// Expand a printf-style command template into a command name and its
// arguments. The template is split on whitespace. The verbs %s, %b, %d
// and %v each consume one argument; a verb that makes up a whole word
// passes the argument through as a single command argument (so it may
// contain whitespace or arbitrary bytes). Verbs embedded in a larger
// word are rendered as text. %% is a literal percent sign.
func formatCommand(template string, args ...interface{}) (string, []interface{}, error) {
	words := strings.FieldsFunc(template, unicode.IsSpace)
	if len(words) == 0 {
		return "", nil, fmt.Errorf("%w: empty command template", ErrMalformedCommand)
	}

	var (
		next     = 0
		expanded = make([]interface{}, 0, len(words))
	)

	for _, word := range words {
		if isVerb(word) {
			if next >= len(args) {
				return "", nil, fmt.Errorf("%w: missing argument for %s", ErrMalformedCommand, word)
			}

			expanded = append(expanded, args[next])
			next++
			continue
		}

		var buf strings.Builder
		for i := 0; i < len(word); i++ {
			if word[i] != '%' {
				buf.WriteByte(word[i])
				continue
			}

			if i+1 >= len(word) {
				return "", nil, fmt.Errorf("%w: trailing %% in %q", ErrMalformedCommand, word)
			}

			i++
			switch word[i] {
			case '%':
				buf.WriteByte('%')

			case 's', 'b', 'd', 'v':
				if next >= len(args) {
					return "", nil, fmt.Errorf("%w: missing argument for %%%c", ErrMalformedCommand, word[i])
				}

				buf.WriteString(encodeArg(args[next]))
				next++

			default:
				return "", nil, fmt.Errorf("%w: unknown verb %%%c", ErrMalformedCommand, word[i])
			}
		}

		expanded = append(expanded, buf.String())
	}

	if next != len(args) {
		return "", nil, fmt.Errorf("%w: %d arguments given, template uses %d", ErrMalformedCommand, len(args), next)
	}

	command, ok := expanded[0].(string)
	if !ok {
		command = encodeArg(expanded[0])
	}

	return command, expanded[1:], nil
}

func isVerb(word string) bool {
	return len(word) == 2 && word[0] == '%' && strings.IndexByte("sbdv", word[1]) >= 0
}

// Render a value the way redigo writes it to the wire.
func encodeArg(arg interface{}) string {
	switch v := arg.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		if v {
			return "1"
		}
		return "0"
	case nil:
		return ""
	case redis.Argument:
		return encodeArg(v.RedisArg())
	}

	return fmt.Sprint(arg)
}
