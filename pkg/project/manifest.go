package project

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/v2"

	"github.com/t6modm/t6modm/pkg/errors"
	"github.com/t6modm/t6modm/pkg/types"
)

// Manifest is the on-disk project description
type Manifest struct {
	Name         string   `koanf:"name" json:"name"`
	Description  string   `koanf:"description" json:"description"`
	Version      string   `koanf:"version" json:"version"`
	Author       string   `koanf:"author" json:"author"`
	Fastfiles    []string `koanf:"fastfiles" json:"fastfiles"`
	Dependencies []string `koanf:"dependencies" json:"dependencies"`
}

// Metadata is the identity record written next to the build archives
type Metadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`
	Author      string `json:"author"`
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}

// ParseManifest decodes and validates manifest JSON
func ParseManifest(data []byte) (Manifest, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: data}, kjson.Parser()); err != nil {
		return Manifest{}, errors.Wrap(err, errors.ErrManifestInvalid, "manifest is not valid JSON")
	}

	var m Manifest
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &m,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &m, unmarshalConf); err != nil {
		return Manifest{}, errors.Wrap(err, errors.ErrManifestInvalid, "manifest fields have unexpected types")
	}

	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// LoadManifest reads the manifest at path. A missing file means the
// directory is not a project.
func LoadManifest(fs types.FS, path string) (Manifest, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Manifest{}, errors.New(errors.ErrProjectNotFound, "that is not a project").
				WithDetail("manifest", path)
		}
		return Manifest{}, errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
	}

	m, err := ParseManifest(data)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.WithDetail("manifest", path)
		}
		return Manifest{}, err
	}
	return m, nil
}

// Validate checks required fields and list entries
func (m Manifest) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New(errors.ErrManifestInvalid, "manifest has no name")
	}
	for i, f := range m.Fastfiles {
		if strings.TrimSpace(f) == "" {
			return errors.Newf(errors.ErrManifestInvalid, "fastfiles[%d] is empty", i)
		}
	}
	for i, d := range m.Dependencies {
		if strings.TrimSpace(d) == "" {
			return errors.Newf(errors.ErrManifestInvalid, "dependencies[%d] is empty", i)
		}
	}
	return nil
}

// Marshal encodes the manifest the way it is stored on disk
func (m Manifest) Marshal() ([]byte, error) {
	if m.Fastfiles == nil {
		m.Fastfiles = []string{}
	}
	if m.Dependencies == nil {
		m.Dependencies = []string{}
	}
	return marshalIndent(m)
}

// Metadata returns the identity fields
func (m Manifest) Metadata() Metadata {
	return Metadata{
		Name:        m.Name,
		Description: m.Description,
		Version:     m.Version,
		Author:      m.Author,
	}
}

// Marshal encodes the metadata record
func (md Metadata) Marshal() ([]byte, error) {
	return marshalIndent(md)
}

func marshalIndent(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
