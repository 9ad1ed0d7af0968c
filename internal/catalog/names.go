package catalog

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"
)

// StarNames resolves common star names to Hipparcos numbers, per naming
// culture. Name files are one-per-culture, "<culture>.names", each line
//
//	<hip>|<name>
//
// with '#' comment lines ignored — the Stellarium skyculture layout
// flattened to the two fields this tool consumes.
type StarNames struct {
	byCulture map[string]map[string]int
	allStars  map[string]int
	byHIP     map[int]map[string]string
}

// NewStarNames creates an empty name index.
func NewStarNames() *StarNames {
	return &StarNames{
		byCulture: make(map[string]map[string]int),
		allStars:  make(map[string]int),
		byHIP:     make(map[int]map[string]string),
	}
}

// LoadCulture merges one culture's name file into the index.
func (n *StarNames) LoadCulture(culture string, r io.Reader) error {
	if _, ok := n.byCulture[culture]; !ok {
		n.byCulture[culture] = make(map[string]int)
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		hipStr, name, ok := strings.Cut(line, "|")
		if !ok {
			return fmt.Errorf("culture %s line %d: missing '|' separator", culture, lineNo)
		}
		hip, err := strconv.Atoi(strings.TrimSpace(hipStr))
		if err != nil {
			return fmt.Errorf("culture %s line %d: %w", culture, lineNo, err)
		}
		name = strings.TrimSpace(name)

		n.byCulture[culture][name] = hip
		n.allStars[name] = hip
		if _, ok := n.byHIP[hip]; !ok {
			n.byHIP[hip] = map[string]string{"hip": fmt.Sprintf("HIP%d", hip)}
		}
		n.byHIP[hip][culture] = name
	}
	return scanner.Err()
}

// LoadDir loads every "<culture>.names" file under a directory.
func (n *StarNames) LoadDir(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read star names dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".names") {
			continue
		}
		culture := strings.TrimSuffix(e.Name(), ".names")
		f, err := fsys.Open(path.Join(dir, e.Name()))
		if err != nil {
			return fmt.Errorf("open star names %s: %w", e.Name(), err)
		}
		err = n.LoadCulture(culture, f)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// Find returns the Hipparcos number of a named star. With a culture hint
// the search is restricted to that culture's names.
func (n *StarNames) Find(name string, culture string) (int, bool) {
	if culture != "" {
		hip, ok := n.byCulture[culture][name]
		return hip, ok
	}
	hip, ok := n.allStars[name]
	return hip, ok
}

// AllNames returns the {culture: name} pairs for a star, always including
// a synthetic "hip" entry.
func (n *StarNames) AllNames(hip int) map[string]string {
	names := n.byHIP[hip]
	if names == nil {
		return map[string]string{"hip": fmt.Sprintf("HIP%d", hip)}
	}
	out := make(map[string]string, len(names))
	for k, v := range names {
		out[k] = v
	}
	return out
}

// Cultures lists the loaded naming cultures.
func (n *StarNames) Cultures() []string {
	out := make([]string, 0, len(n.byCulture))
	for c := range n.byCulture {
		out = append(out, c)
	}
	return out
}

// builtinWesternNames covers the stars in BrightStars so name lookup
// works out of the box.
var builtinWesternNames = map[string]int{
	"Sirius":         32349,
	"Canopus":        30438,
	"Arcturus":       69673,
	"Vega":           91262,
	"Capella":        24608,
	"Rigel":          24436,
	"Procyon":        37279,
	"Betelgeuse":     27989,
	"Achernar":       7588,
	"Altair":         97649,
	"Aldebaran":      21421,
	"Antares":        80763,
	"Spica":          65474,
	"Pollux":         37826,
	"Fomalhaut":      113368,
	"Deneb":          102098,
	"Regulus":        49669,
	"Polaris":        11767,
	"Barnard's Star": 87937,
}

// BuiltinStarNames returns an index preloaded with the western names of
// the built-in bright stars.
func BuiltinStarNames() *StarNames {
	n := NewStarNames()
	n.byCulture["western"] = make(map[string]int, len(builtinWesternNames))
	for name, hip := range builtinWesternNames {
		n.byCulture["western"][name] = hip
		n.allStars[name] = hip
		if _, ok := n.byHIP[hip]; !ok {
			n.byHIP[hip] = map[string]string{"hip": fmt.Sprintf("HIP%d", hip)}
		}
		n.byHIP[hip]["western"] = name
	}
	return n
}
