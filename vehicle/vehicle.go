// Package vehicle declares the vehicle data model as a schema tree built on
// the vttskema field engine: statistics leaves, keyed mapping fields for
// movement/senses/traits, a deterministic damage-threshold formula, an
// advancement object resolved through an injected kind registry, and a flags
// bag governed by module metadata.
package vehicle

import (
	"context"

	"github.com/google/uuid"

	vttskema "github.com/lorewild/vttskema"
	"github.com/lorewild/vttskema/dsl"
)

// Schema is the immutable field tree governing vehicle data. Build one per
// process with NewSchema and share it read-only.
type Schema struct {
	slug        dsl.IdentifierField
	crew        dsl.IntField
	passengers  dsl.IntField
	movement    dsl.MappingField[int]
	senses      dsl.MappingField[int]
	traits      dsl.MappingField[string]
	threshold   dsl.FormulaField
	advancement dsl.TypeObjectField
	flags       dsl.DataObjectField
}

// NewSchema builds the vehicle schema over the given advancement-kind
// registry. The registry should be frozen before entity data is processed.
func NewSchema(kinds *vttskema.Registry) *Schema {
	return &Schema{
		slug:        dsl.Identifier(),
		crew:        dsl.Int(),
		passengers:  dsl.Int(),
		movement:    dsl.Mapping[int](dsl.Int(), dsl.WithInitialKeys[int]("walk", "fly", "swim")),
		senses:      dsl.Mapping[int](dsl.Int(), dsl.WithInitialKeys[int]("darkvision")),
		traits:      dsl.Mapping[string](dsl.String()),
		threshold:   dsl.Formula().Deterministic(),
		advancement: dsl.TypeObject(kinds),
		// No flag schemas ship yet; the declared defaults keep full cleans
		// stable for sheets that expect the keys.
		flags: dsl.DataObject("flags", dsl.Slots(nil)).
			Defaults(map[string]any{"sheet": map[string]any{"collapsed": false}}),
	}
}

type anyField interface {
	Clean(ctx context.Context, v any, opt vttskema.CleanOpt) (any, error)
	Validate(ctx context.Context, v any) error
}

type slot struct {
	name  string
	field anyField
	def   func(ctx context.Context) any
}

func (s *Schema) slots() []slot {
	return []slot{
		{"slug", s.slug, func(ctx context.Context) any { return s.slug.InitialValue(ctx) }},
		{"crew", s.crew, func(ctx context.Context) any { return s.crew.InitialValue(ctx) }},
		{"passengers", s.passengers, func(ctx context.Context) any { return s.passengers.InitialValue(ctx) }},
		{"movement", s.movement, func(ctx context.Context) any { return s.movement.InitialValue(ctx) }},
		{"senses", s.senses, func(ctx context.Context) any { return s.senses.InitialValue(ctx) }},
		{"traits", s.traits, func(ctx context.Context) any { return s.traits.InitialValue(ctx) }},
		{"threshold", s.threshold, func(ctx context.Context) any { return s.threshold.InitialValue(ctx) }},
		{"advancement", s.advancement, func(ctx context.Context) any { return s.advancement.InitialValue(ctx) }},
		{"flags", s.flags, func(ctx context.Context) any { return s.flags.InitialValue(ctx) }},
	}
}

// Clean coerces raw vehicle data and, on full (non-partial) passes, fills
// missing declared keys with field defaults. Undeclared keys are preserved
// untouched. The input map is never mutated.
func (s *Schema) Clean(ctx context.Context, raw map[string]any, opt vttskema.CleanOpt) (map[string]any, error) {
	out := vttskema.CloneMap(raw)
	if out == nil {
		out = map[string]any{}
	}
	for _, sl := range s.slots() {
		if v, ok := out[sl.name]; ok {
			cv, err := sl.field.Clean(ctx, v, opt)
			if err != nil {
				return nil, vttskema.RebaseIssues(sl.name, err)
			}
			out[sl.name] = cv
			continue
		}
		if !opt.Partial {
			out[sl.name] = sl.def(ctx)
		}
	}
	return out, nil
}

// Validate checks cleaned vehicle data, collecting every field failure.
func (s *Schema) Validate(ctx context.Context, data map[string]any) error {
	var iss vttskema.Issues
	for _, sl := range s.slots() {
		v, ok := data[sl.name]
		if !ok {
			continue
		}
		if err := sl.field.Validate(ctx, v); err != nil {
			iss = vttskema.AppendIssues(iss, vttskema.RebaseIssues(sl.name, err)...)
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// Vehicle is the typed in-memory value produced by Schema.Initialize. Field
// values reference the vehicle only as their parent context.
type Vehicle struct {
	ID          string
	Slug        string
	Crew        int
	Passengers  int
	Movement    map[string]int
	Senses      map[string]int
	Traits      map[string]string
	Threshold   string
	Advancement any
	Flags       map[string]any
}

// Initialize builds a Vehicle from cleaned data. A missing _id is minted so
// every initialized vehicle is addressable.
func (s *Schema) Initialize(ctx context.Context, data map[string]any) (*Vehicle, error) {
	v := &Vehicle{}
	if id, ok := data["_id"].(string); ok && id != "" {
		v.ID = id
	} else {
		v.ID = uuid.NewString()
	}

	var err error
	if v.Slug, err = s.slug.Initialize(ctx, data["slug"], v); err != nil {
		return nil, vttskema.RebaseIssues("slug", err)
	}
	if v.Crew, err = s.crew.Initialize(ctx, data["crew"], v); err != nil {
		return nil, vttskema.RebaseIssues("crew", err)
	}
	if v.Passengers, err = s.passengers.Initialize(ctx, data["passengers"], v); err != nil {
		return nil, vttskema.RebaseIssues("passengers", err)
	}
	if v.Movement, err = s.movement.Initialize(ctx, data["movement"], v); err != nil {
		return nil, vttskema.RebaseIssues("movement", err)
	}
	if v.Senses, err = s.senses.Initialize(ctx, data["senses"], v); err != nil {
		return nil, vttskema.RebaseIssues("senses", err)
	}
	if v.Traits, err = s.traits.Initialize(ctx, data["traits"], v); err != nil {
		return nil, vttskema.RebaseIssues("traits", err)
	}
	if v.Threshold, err = s.threshold.Initialize(ctx, data["threshold"], v); err != nil {
		return nil, vttskema.RebaseIssues("threshold", err)
	}
	adv, err := s.advancement.Initialize(ctx, data["advancement"], v)
	if err != nil {
		return nil, vttskema.RebaseIssues("advancement", err)
	}
	v.Advancement = adv
	fl, err := s.flags.Initialize(ctx, data["flags"], v)
	if err != nil {
		return nil, vttskema.RebaseIssues("flags", err)
	}
	if fm, ok := fl.(map[string]any); ok {
		v.Flags = fm
	}
	return v, nil
}
