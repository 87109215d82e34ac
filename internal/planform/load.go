package planform

import (
	"fmt"

	"github.com/alexiusacademia/gowing/internal/units"
	"github.com/spf13/viper"
)

// wingFile is the on-disk layout of a wing definition. Angles are read in
// AngleUnits (degrees by default) and lengths in LengthUnits (metres).
type wingFile struct {
	Tag           string        `mapstructure:"tag"`
	RootChord     float64       `mapstructure:"root_chord"`
	ProjectedSpan float64       `mapstructure:"projected_span"`
	Symmetric     bool          `mapstructure:"symmetric"`
	AngleUnits    string        `mapstructure:"angle_units"`
	LengthUnits   string        `mapstructure:"length_units"`
	Segments      []segmentFile `mapstructure:"segments"`
}

type segmentFile struct {
	Tag               string  `mapstructure:"tag"`
	SpanFraction      float64 `mapstructure:"span_fraction"`
	ChordFraction     float64 `mapstructure:"chord_fraction"`
	Twist             float64 `mapstructure:"twist"`
	QuarterChordSweep float64 `mapstructure:"quarter_chord_sweep"`
	Dihedral          float64 `mapstructure:"dihedral"`
	ThicknessToChord  float64 `mapstructure:"thickness_to_chord"`
}

// LoadFromFile loads a wing definition from a JSON, YAML or TOML file.
// The format follows the file extension.
func LoadFromFile(path string) (*Wing, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("symmetric", true)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read wing file: %w", err)
	}

	var f wingFile
	if err := v.Unmarshal(&f); err != nil {
		return nil, fmt.Errorf("decode wing file: %w", err)
	}

	wing, err := f.wing()
	if err != nil {
		return nil, err
	}
	if err := wing.Validate(); err != nil {
		return nil, err
	}
	return wing, nil
}

func (f *wingFile) wing() (*Wing, error) {
	angle, err := units.Angle(f.AngleUnits)
	if err != nil {
		return nil, err
	}
	length, err := units.Length(f.LengthUnits)
	if err != nil {
		return nil, err
	}

	w := &Wing{
		Tag:           f.Tag,
		RootChord:     f.RootChord * length,
		ProjectedSpan: f.ProjectedSpan * length,
		Symmetric:     f.Symmetric,
		Segments:      make([]Segment, len(f.Segments)),
	}
	for i, s := range f.Segments {
		w.Segments[i] = Segment{
			Tag:               s.Tag,
			SpanFraction:      s.SpanFraction,
			ChordFraction:     s.ChordFraction,
			Twist:             s.Twist * angle,
			QuarterChordSweep: s.QuarterChordSweep * angle,
			Dihedral:          s.Dihedral * angle,
			ThicknessToChord:  s.ThicknessToChord,
		}
	}
	return w, nil
}
