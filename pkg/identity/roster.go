package identity

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// rosterFile is the YAML shape of an on-disk roster:
//
//	users:
//	  - id: "1"
//	    name: Daniel Smith
//	    email: dan@example.com
type rosterFile struct {
	Users []User `koanf:"users"`
}

// LoadRoster reads a user roster from a YAML file. Fetching and
// materializing the roster is the caller's concern; the resolver itself
// performs no I/O.
func LoadRoster(path string) ([]User, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading roster file %s: %w", path, err)
	}

	var rf rosterFile
	if err := k.UnmarshalWithConf("", &rf, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("parsing roster file %s: %w", path, err)
	}

	for i, u := range rf.Users {
		if u.Name == "" {
			return nil, fmt.Errorf("roster user %d has no name", i)
		}
	}
	return rf.Users, nil
}
