package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/FocuswithJustin/CedarBible/core/errors"
	"github.com/FocuswithJustin/CedarBible/core/normalize"
	"github.com/FocuswithJustin/CedarBible/core/parse"
)

// Profile describes how the files of one translation are recognized and
// parsed.
type Profile struct {
	Name     string          // translation name to register under
	Match    string          // lowercase substring matched against file names
	Names    normalize.Table // book-name table; the zero table passes through
	Grammars []parse.Grammar // nil means parse.DefaultGrammars
}

// Registry is an ordered profile list. The first profile whose Match is
// contained in a file's lowercased name claims the file.
type Registry []Profile

// Find returns the first profile matching the file name.
func (r Registry) Find(filename string) (Profile, bool) {
	name := strings.ToLower(filename)
	for _, p := range r {
		if p.Match != "" && strings.Contains(name, p.Match) {
			return p, true
		}
	}
	return Profile{}, false
}

// Builtin returns the built-in profiles: the German translations with
// the German book-name table, the English ones with the English table.
func Builtin() Registry {
	return Registry{
		{Name: "Elberfelder1905", Match: "elberfelder1905", Names: normalize.German()},
		{Name: "Schlachter1951", Match: "schlachter1951", Names: normalize.German()},
		{Name: "Luther1912", Match: "luther1912", Names: normalize.German()},
		{Name: "World", Match: "world", Names: normalize.English()},
		{Name: "KJV", Match: "kjv", Names: normalize.English()},
		{Name: "NIV", Match: "niv", Names: normalize.English()},
		{Name: "ESV", Match: "esv", Names: normalize.English()},
	}
}

// registryFile is the YAML shape of a profile registry file.
type registryFile struct {
	Profiles []profileSpec `yaml:"profiles"`
}

type profileSpec struct {
	Name     string   `yaml:"name"`
	Match    string   `yaml:"match"`
	Names    string   `yaml:"names"`    // german | english | none (default none)
	Grammars []string `yaml:"grammars"` // optional patterns with 4 capture groups
}

// LoadRegistry reads a YAML profile registry file.
func LoadRegistry(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIO("read", path, err)
	}

	var spec registryFile
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, errors.NewParse("profile registry", path, err.Error())
	}
	if len(spec.Profiles) == 0 {
		return nil, errors.NewParse("profile registry", path, "no profiles defined")
	}

	reg := make(Registry, 0, len(spec.Profiles))
	for _, p := range spec.Profiles {
		if p.Name == "" || p.Match == "" {
			return nil, errors.NewParse("profile registry", path, "profile entries need name and match")
		}

		var table normalize.Table
		switch strings.ToLower(p.Names) {
		case "german":
			table = normalize.German()
		case "english":
			table = normalize.English()
		case "", "none":
			table = normalize.None()
		default:
			return nil, errors.NewParse("profile registry", path, fmt.Sprintf("unknown names table %q", p.Names))
		}

		var grammars []parse.Grammar
		for i, pattern := range p.Grammars {
			g, err := parse.NewGrammar(fmt.Sprintf("%s-%d", p.Name, i+1), pattern)
			if err != nil {
				return nil, errors.NewParse("profile registry", path, err.Error())
			}
			grammars = append(grammars, g)
		}

		reg = append(reg, Profile{
			Name:     p.Name,
			Match:    strings.ToLower(p.Match),
			Names:    table,
			Grammars: grammars,
		})
	}
	return reg, nil
}
