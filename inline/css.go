package inline

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/segment/styled"
)

// tagDeclarations maps inline emphasis tags to the CSS they imply.
var tagDeclarations = map[string][]styled.KeyValue{
	"b":      {{Key: "font-weight", Value: "bold"}},
	"strong": {{Key: "font-weight", Value: "bold"}},
	"em":     {{Key: "font-style", Value: "italic"}},
	"i":      {{Key: "font-style", Value: "italic"}},
	"u":      {{Key: "text-decoration", Value: "underline"}},
	"s":      {{Key: "text-decoration", Value: "line-through"}},
	"small":  {{Key: "font-size", Value: "smaller"}},
	"sub":    {{Key: "vertical-align", Value: "sub"}, {Key: "font-size", Value: "smaller"}},
	"sup":    {{Key: "vertical-align", Value: "super"}, {Key: "font-size", Value: "smaller"}},
	"code":   {{Key: "font-family", Value: "monospace"}},
	"kbd":    {{Key: "font-family", Value: "monospace"}},
	"samp":   {{Key: "font-family", Value: "monospace"}},
	"var":    {{Key: "font-family", Value: "monospace"}},
	"mark":   {{Key: "background-color", Value: "yellow"}, {Key: "color", Value: "black"}},
}

// computedKeys is the curated set of computed text properties worth
// preserving, in emission order.
var computedKeys = []string{
	"color",
	"font-family",
	"font-size",
	"font-weight",
	"font-style",
	"line-height",
	"text-decoration",
	"text-transform",
	"letter-spacing",
	"word-spacing",
	"text-shadow",
	"background-color",
}

// genericFamilies are font families (and the usual system-stack members)
// that carry no styling intent of their own.
var genericFamilies = map[string]bool{
	"serif":              true,
	"sans-serif":         true,
	"monospace":          true,
	"cursive":            true,
	"fantasy":            true,
	"system-ui":          true,
	"ui-serif":           true,
	"ui-sans-serif":      true,
	"ui-monospace":       true,
	"ui-rounded":         true,
	"-apple-system":      true,
	"blinkmacsystemfont": true,
	"segoe ui":           true,
	"roboto":             true,
	"helvetica":          true,
	"helvetica neue":     true,
	"arial":              true,
	"noto sans":          true,
	"liberation sans":    true,
	"apple color emoji":  true,
	"segoe ui emoji":     true,
	"segoe ui symbol":    true,
	"noto color emoji":   true,
	"emoji":              true,
	"math":               true,
}

// CSSString distills a style fact into an inline style declaration list.
// The pipeline has three stages, each only filling gaps left by earlier
// ones: semantic-tag CSS, the fact's raw inline declarations (with the
// configured text-color token rewritten to a plain color declaration), and
// a curated subset of the computed-style snapshot. The result is the
// semicolon-joined non-empty set, e.g. "font-weight: bold; color: #c33".
func (p *Preserver) CSSString(fact StyleFact) string {
	var decls []styled.KeyValue
	seen := make(map[string]bool)
	emit := func(key string, value styled.Property) {
		if seen[key] || value.IsEmpty() {
			return
		}
		seen[key] = true
		decls = append(decls, styled.KeyValue{Key: key, Value: value})
	}

	// stage 1: CSS implied by the semantic tag
	for _, kv := range tagDeclarations[fact.TagName] {
		emit(kv.Key, kv.Value)
	}

	// stage 2: the fact's own inline declarations
	if fact.InlineStyleRaw != "" {
		parsed, err := parser.ParseDeclarations(fact.InlineStyleRaw)
		if err != nil {
			tracer().Infof("inline: unparsable inline style %q: %v", fact.InlineStyleRaw, err)
		} else {
			for _, decl := range parsed {
				key := decl.Property
				if key == p.colorToken {
					key = "color"
				} else if strings.HasPrefix(key, "--") {
					continue // other design tokens carry no direct styling
				}
				emit(key, styled.Property(decl.Value))
			}
		}
	}

	// stage 3: curated computed properties filling remaining gaps
	for _, key := range computedKeys {
		value := styled.Property(fact.ComputedProperties[key])
		if !includeComputed(key, value) {
			continue
		}
		emit(key, value)
	}

	parts := make([]string, 0, len(decls))
	for _, kv := range decls {
		parts = append(parts, kv.Key+": "+kv.Value.String())
	}
	return strings.Join(parts, "; ")
}

// includeComputed decides wether a computed property value is meaningful
// enough to re-emit on a reconstructed span.
func includeComputed(key string, value styled.Property) bool {
	if value.IsDefault() {
		return false
	}
	switch key {
	case "font-family":
		return namesBrandFont(value.String())
	case "font-style":
		v := value.String()
		return v == "italic" || strings.HasPrefix(v, "oblique")
	case "font-weight":
		v := value.String()
		return v != "normal" && v != "400"
	case "color", "background-color":
		v := value.String()
		return v != "transparent" && v != "rgba(0, 0, 0, 0)"
	}
	return true
}

// namesBrandFont reports wether a font-family value names at least one
// specific, non-generic font. Pure system stacks are not worth preserving.
func namesBrandFont(families string) bool {
	for _, fam := range strings.Split(families, ",") {
		fam = strings.Trim(strings.TrimSpace(fam), `"'`)
		if fam == "" {
			continue
		}
		if !genericFamilies[strings.ToLower(fam)] {
			return true
		}
	}
	return false
}
