package req

import (
	"net/http"
	"strconv"
	"strings"
)

// mediaTypes maps the short names Accepts understands to full media types.
var mediaTypes = map[string]string{
	"html": "text/html",
	"json": "application/json",
	"text": "text/plain",
	"txt":  "text/plain",
	"xml":  "application/xml",
}

// An acceptSpec is one media range from an Accept header.
type acceptSpec struct {
	typ     string
	subtype string
	quality float64
}

// Accepts returns the offer best matching the Accept header of r.
//
// Offers are either a full media type, such as "text/html",
// or a short name, such as "html" or "json".
// The Accept header's quality values are respected;
// for equal quality, an exact match beats a type/* match beating */*.
// Among equally good matches, the earlier offer wins.
//
// If r has no Accept header, the first offer returns.
// If no offer is acceptable, or r is nil, Accepts returns an empty string.
func Accepts(r *http.Request, offers ...string) string {
	if r == nil || len(offers) == 0 {
		return ""
	}

	accept := strings.Join(r.Header.Values("Accept"), ",")
	if strings.TrimSpace(accept) == "" {
		return offers[0]
	}

	specs := parseAccept(accept)
	if len(specs) == 0 {
		return offers[0]
	}

	best := ""
	bestQuality := 0.0
	bestSpecificity := 0
	for _, offer := range offers {
		typ, subtype := splitMediaType(normalizeMediaType(offer))
		quality, specificity := match(typ, subtype, specs)
		if quality <= 0 {
			continue
		}

		if quality > bestQuality || (quality == bestQuality && specificity > bestSpecificity) {
			best = offer
			bestQuality = quality
			bestSpecificity = specificity
		}
	}

	return best
}

// AcceptsHTML reports whether r prefers an HTML representation.
func AcceptsHTML(r *http.Request) bool {
	return Accepts(r, "html") == "html"
}

// match finds the most specific media range in specs matching the media type, returning its quality.
// Specificity: 3 = exact match, 2 = subtype wildcard, 1 = full wildcard, 0 = no match
func match(typ, subtype string, specs []acceptSpec) (float64, int) {
	quality := 0.0
	specificity := 0
	for _, spec := range specs {
		var s int
		switch {
		case spec.typ == typ && spec.subtype == subtype:
			s = 3
		case spec.typ == typ && spec.subtype == "*":
			s = 2
		case spec.typ == "*" && spec.subtype == "*":
			s = 1
		default:
			continue
		}

		if s > specificity {
			quality = spec.quality
			specificity = s
		}
	}

	return quality, specificity
}

// parseAccept parses an Accept header into its media ranges, skipping malformed ones.
func parseAccept(header string) []acceptSpec {
	specs := make([]acceptSpec, 0, 4)
	for _, part := range strings.Split(header, ",") {
		params := strings.Split(part, ";")
		typ, subtype := splitMediaType(params[0])
		if typ == "" || subtype == "" {
			continue
		}

		spec := acceptSpec{typ: typ, subtype: subtype, quality: 1}
		for _, param := range params[1:] {
			key, val, ok := strings.Cut(strings.TrimSpace(param), "=")
			if !ok || strings.TrimSpace(key) != "q" {
				continue
			}

			q, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
			if err == nil && q >= 0 && q <= 1 {
				spec.quality = q
			}
		}

		specs = append(specs, spec)
	}

	return specs
}

// splitMediaType lower cases and splits a media type into its type and subtype.
func splitMediaType(mediaType string) (string, string) {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	typ, subtype, ok := strings.Cut(mediaType, "/")
	if !ok {
		return "", ""
	}

	return strings.TrimSpace(typ), strings.TrimSpace(subtype)
}

// normalizeMediaType converts short names to full media types.
func normalizeMediaType(offer string) string {
	offer = strings.ToLower(strings.TrimSpace(offer))
	if mt, ok := mediaTypes[offer]; ok {
		return mt
	}

	return offer
}
