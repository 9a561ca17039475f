package emit

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/isagen/catalog"
	"github.com/ezrec/isagen/isa"
)

func yamlKey(name string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
}

func yamlOpcode(opcode uint16) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf("%#x", opcode)}
}

// Manifest writes the addressing modes of every mnemonic of every
// architecture as YAML, in catalog order.
func (g *Generator) Manifest(cat *catalog.Catalog) (err error) {
	root := &yaml.Node{Kind: yaml.MappingNode}

	for arch := range isa.Archs() {
		mnemonics := &yaml.Node{Kind: yaml.MappingNode}
		for _, entry := range cat.Entries(arch) {
			modes := &yaml.Node{Kind: yaml.MappingNode}
			for mode, opcode := range entry.Binding.All() {
				modes.Content = append(modes.Content, yamlKey(mode.String()), yamlOpcode(opcode))
			}
			mnemonics.Content = append(mnemonics.Content, yamlKey(entry.Mnemonic), modes)
		}
		root.Content = append(root.Content, yamlKey(arch.String()), mnemonics)
	}

	enc := yaml.NewEncoder(g)
	enc.SetIndent(2)
	err = enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}})
	if err != nil {
		return
	}

	err = enc.Close()
	return
}

// ManifestArch is the decoded manifest of an architecture.
type ManifestArch map[string]map[string]uint16

// ReadManifest decodes a manifest.
func ReadManifest(data []byte) (manifest map[string]ManifestArch, err error) {
	err = yaml.Unmarshal(data, &manifest)
	return
}
