package emit

import (
	"errors"
	"iter"

	"github.com/ezrec/isagen/translate"
)

var f = translate.From

var (
	ErrArtifactExists = errors.New(f("artifact already rendered"))
)

// Artifact is a rendered output file.
type Artifact struct {
	Name string
	Data []byte
}

// Bundle holds the rendered artifacts of a compilation until they are all
// ready to be written.
type Bundle struct {
	Artifacts []Artifact
}

// Render renders an artifact into the bundle.
func (bundle *Bundle) Render(name string, render func(g *Generator) error) (err error) {
	_, ok := bundle.Get(name)
	if ok {
		err = ErrArtifactExists
		return
	}

	g := &Generator{}
	err = render(g)
	if err != nil {
		return
	}

	bundle.Artifacts = append(bundle.Artifacts, Artifact{Name: name, Data: g.Bytes()})
	return
}

// Get returns the content of an artifact.
func (bundle *Bundle) Get(name string) (data []byte, ok bool) {
	for _, artifact := range bundle.Artifacts {
		if artifact.Name == name {
			return artifact.Data, true
		}
	}
	return
}

// All iterates over the artifacts, in rendering order.
func (bundle *Bundle) All() iter.Seq2[string, []byte] {
	return func(yield func(string, []byte) bool) {
		for _, artifact := range bundle.Artifacts {
			if !yield(artifact.Name, artifact.Data) {
				return
			}
		}
	}
}

// Marshal writes all artifacts to a file system.
func (bundle *Bundle) Marshal(filesys CreateFS) (err error) {
	for name, data := range bundle.All() {
		err = writeFile(filesys, name, data)
		if err != nil {
			return
		}
	}
	return
}

func writeFile(filesys CreateFS, name string, data []byte) (err error) {
	file, err := filesys.Create(name)
	if err != nil {
		return
	}
	defer func() {
		cerr := file.Close()
		if err == nil {
			err = cerr
		}
	}()

	_, err = file.Write(data)
	return
}
