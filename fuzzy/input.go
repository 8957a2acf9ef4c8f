package fuzzy

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// termValidate checks decoded term definitions (point arity and finiteness).
var termValidate = NewValidator()

// NewValidator returns a validator that understands the "finite" tag used by
// TermDef, for callers embedding term definitions in their own structs.
// It panics if the tag cannot be registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("finite", validateFinite); err != nil {
		panic(fmt.Sprintf("fuzzy: register finite validation: %v", err))
	}

	return v
}

// validateFinite rejects NaN and ±Inf float fields.
func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	if !f.CanFloat() {
		return false
	}

	return !isNonFinite(f.Float())
}

// decode turns textual input into a generic JSON value; other values pass through.
func decode(v any) (any, error) {
	switch raw := v.(type) {
	case string:
		return unmarshal([]byte(raw))
	case []byte:
		return unmarshal(raw)
	case json.RawMessage:
		return unmarshal(raw)
	default:
		return v, nil
	}
}

// unmarshal decodes data into an untyped value, wrapping failures as ErrParse.
func unmarshal(data []byte) (any, error) {
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return out, nil
}

// ResolveShape classifies an already-decoded term container and returns the
// term list it holds.
//
// Resolution order:
//  1. a list (or []TermDef) is the term list itself;
//  2. a mapping holding expectedKey yields that value;
//  3. a mapping with exactly one entry yields its value;
//  4. any other mapping is ambiguous.
//
// Errors:
//   - ErrStructure for ambiguous mappings or a resolved value that is not a list.
//   - ErrUnsupportedType for anything that is neither list nor mapping.
func ResolveShape(v any, expectedKey string) (Shape, any, error) {
	switch c := v.(type) {
	case []any, []TermDef:
		return ShapeList, c, nil
	case map[string]any:
		return resolveMapping(c, expectedKey)
	case map[string][]TermDef:
		generic := make(map[string]any, len(c))
		for k, defs := range c {
			generic[k] = defs
		}
		return resolveMapping(generic, expectedKey)
	default:
		return 0, nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

// resolveMapping applies steps 2–4 of ResolveShape.
func resolveMapping(m map[string]any, expectedKey string) (Shape, any, error) {
	if expectedKey != "" {
		if inner, ok := m[expectedKey]; ok {
			if !isList(inner) {
				return 0, nil, fmt.Errorf("%w: value under %q must be a list, got %T", ErrStructure, expectedKey, inner)
			}
			return ShapeNamedMapping, inner, nil
		}
	}
	if len(m) != 1 {
		return 0, nil, fmt.Errorf("%w: ambiguous dictionary structure (%d keys, none is %q)", ErrStructure, len(m), expectedKey)
	}
	for key, inner := range m {
		if !isList(inner) {
			return 0, nil, fmt.Errorf("%w: single dictionary value %q must be a list, got %T", ErrStructure, key, inner)
		}
		return ShapeSingleEntryMapping, inner, nil
	}

	return 0, nil, ErrStructure // unreachable: len(m) == 1
}

// isList reports whether v is a supported term list.
func isList(v any) bool {
	switch v.(type) {
	case []any, []TermDef:
		return true
	default:
		return false
	}
}

// NormalizeTerms converts a term container into Terms.
//
// The input may be a JSON string/[]byte/json.RawMessage, a decoded value
// ([]any, map[string]any), typed definitions ([]TermDef, map[string][]TermDef)
// or Terms. Each term's points are stably sorted ascending by X. When an ID
// repeats, the later definition wins.
//
// Errors: ErrParse, ErrStructure, ErrValidation, ErrUnsupportedType.
func NormalizeTerms(v any, expectedKey string) (Terms, error) {
	if t, ok := v.(Terms); ok {
		return t.normalized()
	}
	decoded, err := decode(v)
	if err != nil {
		return nil, err
	}
	_, list, err := ResolveShape(decoded, expectedKey)
	if err != nil {
		return nil, err
	}

	var defs []TermDef
	switch l := list.(type) {
	case []TermDef:
		defs = l
	case []any:
		defs = make([]TermDef, 0, len(l))
		for i, raw := range l {
			def, err := termDefFromValue(raw)
			if err != nil {
				return nil, fmt.Errorf("term #%d: %w", i, err)
			}
			defs = append(defs, def)
		}
	}

	out := make(Terms, len(defs))
	for _, def := range defs {
		pts, err := def.points()
		if err != nil {
			return nil, err
		}
		out[def.ID] = pts
	}

	return out, nil
}

// termDefFromValue reads one decoded term object.
func termDefFromValue(raw any) (TermDef, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return TermDef{}, fmt.Errorf("%w: term must be an object, got %T", ErrValidation, raw)
	}
	rawID, hasID := obj["id"]
	rawPoints, hasPoints := obj["points"]
	if !hasID || !hasPoints {
		return TermDef{}, fmt.Errorf("%w: term must contain 'id' and 'points'", ErrValidation)
	}
	id, ok := idString(rawID)
	if !ok {
		return TermDef{}, fmt.Errorf("%w: term id must be a string or number, got %T", ErrValidation, rawID)
	}
	list, ok := rawPoints.([]any)
	if !ok {
		return TermDef{}, fmt.Errorf("%w: term %q: points must be a list, got %T", ErrValidation, id, rawPoints)
	}

	def := TermDef{ID: id, Points: make([][]float64, 0, len(list))}
	for j, rawPt := range list {
		coords, ok := rawPt.([]any)
		if !ok {
			return TermDef{}, fmt.Errorf("%w: term %q point #%d must be a list, got %T", ErrValidation, id, j, rawPt)
		}
		pt := make([]float64, 0, len(coords))
		for _, c := range coords {
			f, err := toFloat(c)
			if err != nil {
				return TermDef{}, fmt.Errorf("%w: term %q point #%d: %v", ErrValidation, id, j, err)
			}
			pt = append(pt, f)
		}
		def.Points = append(def.Points, pt)
	}

	return def, nil
}

// points validates the definition and returns its points sorted by X.
func (d TermDef) points() ([]Point, error) {
	if err := termValidate.Struct(d); err != nil {
		return nil, fmt.Errorf("%w: term %q: %v", ErrValidation, d.ID, err)
	}
	pts := make([]Point, len(d.Points))
	for i, p := range d.Points {
		pts[i] = Point{X: p[0], Y: p[1]}
	}
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].X < pts[j].X })

	return pts, nil
}

// NormalizeRules converts a rule list into ordered (antecedent, consequent)
// pairs. Referenced term IDs are not checked here.
//
// Accepted: JSON text, []any of 2-element lists, []Rule, [][2]string.
// Errors: ErrParse, ErrValidation (short or non-string entries), ErrUnsupportedType.
func NormalizeRules(v any) ([]Rule, error) {
	decoded, err := decode(v)
	if err != nil {
		return nil, err
	}
	switch rs := decoded.(type) {
	case []Rule:
		out := make([]Rule, len(rs))
		copy(out, rs)
		return out, nil
	case [][2]string:
		out := make([]Rule, len(rs))
		for i, r := range rs {
			out[i] = Rule{Antecedent: r[0], Consequent: r[1]}
		}
		return out, nil
	case []any:
		out := make([]Rule, 0, len(rs))
		for i, raw := range rs {
			pair, ok := raw.([]any)
			if !ok || len(pair) < 2 {
				return nil, fmt.Errorf("%w: rule #%d must be a [antecedent, consequent] pair", ErrValidation, i)
			}
			ant, okA := idString(pair[0])
			con, okC := idString(pair[1])
			if !okA || !okC {
				return nil, fmt.Errorf("%w: rule #%d terms must be strings or numbers", ErrValidation, i)
			}
			out = append(out, Rule{Antecedent: ant, Consequent: con})
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: rules %T", ErrUnsupportedType, decoded)
	}
}

// idString renders a decoded term identifier. Numbers are formatted in their
// shortest form so that numeric IDs in terms and rules still match.
func idString(v any) (string, bool) {
	switch id := v.(type) {
	case string:
		return id, true
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64), true
	case json.Number:
		return id.String(), true
	case int:
		return strconv.Itoa(id), true
	default:
		return "", false
	}
}

// toFloat reads a coordinate from a decoded JSON number or a numeric string.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, fmt.Errorf("coordinate %v (%T) is not a number", v, v)
	}
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(f float64) bool {
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// normalized returns a deep copy of t with every point slice re-sorted,
// rejecting empty or non-finite terms like decoded input.
func (t Terms) normalized() (Terms, error) {
	out := make(Terms, len(t))
	for id, pts := range t {
		if len(pts) == 0 {
			return nil, fmt.Errorf("%w: term %q has no points", ErrValidation, id)
		}
		cp := make([]Point, len(pts))
		for i, p := range pts {
			if isNonFinite(p.X) || isNonFinite(p.Y) {
				return nil, fmt.Errorf("%w: term %q point #%d is not finite", ErrValidation, id, i)
			}
			cp[i] = p
		}
		sort.SliceStable(cp, func(i, j int) bool { return cp[i].X < cp[j].X })
		out[id] = cp
	}

	return out, nil
}
