package jsonschema

import (
	"net"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// formatValidators is the fixed, non-extensible table of "format" checkers
// this validator supports - no arbitrary format-keyword plugin system.
// Adding a tenth format here is a deliberate
// code change, not a runtime registration.
var formatValidators = map[string]func(string) bool{
	"uri":           isURI,
	"uri-reference": isURIReference,
	"date-time":     isDateTime,
	"date":          isDate,
	"time":          isTime,
	"email":         isEmail,
	"color-hex":     isColorHex,
	"ipv4":          isIPV4,
	"ipv6":          isIPV6,
}

// isDateTime tells whether s is a valid RFC 3339 date-time.
func isDateTime(s string) bool {
	if len(s) < 20 {
		return false
	}
	if s[10] != 'T' && s[10] != 't' {
		return false
	}
	return isDate(s[:10]) && isTime(s[11:])
}

func isDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func isTime(str string) bool {
	if len(str) < 9 || str[2] != ':' || str[5] != ':' {
		return false
	}
	inRange := func(seg string, min, max int) (int, bool) {
		n, err := strconv.Atoi(seg)
		if err != nil || n < min || n > max {
			return 0, false
		}
		return n, true
	}
	var h, m, s int
	var ok bool
	if h, ok = inRange(str[0:2], 0, 23); !ok {
		return false
	}
	if m, ok = inRange(str[3:5], 0, 59); !ok {
		return false
	}
	if s, ok = inRange(str[6:8], 0, 60); !ok {
		return false
	}
	rest := str[8:]

	if len(rest) > 0 && rest[0] == '.' {
		rest = rest[1:]
		digits := 0
		for rest != "" && rest[0] >= '0' && rest[0] <= '9' {
			digits++
			rest = rest[1:]
		}
		if digits == 0 {
			return false
		}
	}
	if len(rest) == 0 {
		return false
	}

	if rest[0] == 'z' || rest[0] == 'Z' {
		return len(rest) == 1
	}

	if len(rest) != 6 || rest[3] != ':' {
		return false
	}
	var sign int
	switch rest[0] {
	case '+':
		sign = -1
	case '-':
		sign = 1
	default:
		return false
	}
	zh, ok := inRange(rest[1:3], 0, 23)
	if !ok {
		return false
	}
	zm, ok := inRange(rest[4:6], 0, 59)
	if !ok {
		return false
	}
	hm := (h*60 + m) + sign*(zh*60+zm)
	if hm < 0 {
		hm += 24 * 60
	}
	h = hm / 60
	if s == 60 && h != 23 {
		return false
	}
	return true
}

func isEmail(s string) bool {
	if len(s) > 254 {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	if at == -1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if len(local) > 64 {
		return false
	}
	if len(domain) >= 2 && domain[0] == '[' && domain[len(domain)-1] == ']' {
		ip := domain[1 : len(domain)-1]
		if strings.HasPrefix(ip, "IPv6:") {
			return isIPV6(strings.TrimPrefix(ip, "IPv6:"))
		}
		return isIPV4(ip)
	}
	if !isHostname(domain) {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}

func isHostname(s string) bool {
	s = strings.TrimSuffix(s, ".")
	if len(s) > 253 {
		return false
	}
	for _, label := range strings.Split(s, ".") {
		if n := len(label); n < 1 || n > 63 {
			return false
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for _, c := range label {
			valid := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-'
			if !valid {
				return false
			}
		}
	}
	return true
}

func isIPV4(s string) bool {
	groups := strings.Split(s, ".")
	if len(groups) != 4 {
		return false
	}
	for _, g := range groups {
		n, err := strconv.Atoi(g)
		if err != nil || n < 0 || n > 255 {
			return false
		}
		if n != 0 && g[0] == '0' {
			return false
		}
	}
	return true
}

func isIPV6(s string) bool {
	if !strings.Contains(s, ":") {
		return false
	}
	return net.ParseIP(s) != nil
}

func isURI(s string) bool {
	u, err := parseCheckedURL(s)
	return err == nil && u.IsAbs()
}

func isURIReference(s string) bool {
	_, err := parseCheckedURL(s)
	return err == nil && !strings.Contains(s, `\`)
}

func parseCheckedURL(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	hostname := u.Hostname()
	if strings.IndexByte(hostname, ':') != -1 {
		if strings.IndexByte(u.Host, '[') == -1 || strings.IndexByte(u.Host, ']') == -1 {
			return nil, ErrIPv6AddressNotEnclosed
		}
		if !isIPV6(hostname) {
			return nil, ErrInvalidIPv6Address
		}
	}
	return u, nil
}

// isColorHex tells whether s is a valid CSS hex color (#rgb, #rgba, #rrggbb,
// #rrggbbaa), the one format the editor feature surface adds beyond the
// core JSON Schema vocabulary, for schemas describing style/theme documents.
func isColorHex(s string) bool {
	if len(s) == 0 || s[0] != '#' {
		return false
	}
	hex := s[1:]
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(hex); i++ {
		c := hex[i]
		isHexDigit := (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
		if !isHexDigit {
			return false
		}
	}
	return true
}
