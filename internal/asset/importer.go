package asset

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	// Texture formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/charmbracelet/log"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-platformer/internal/world"
)

// Errors describing why a target could not be resolved.
var (
	ErrUnknownType   = errors.New("unsupported asset type")
	ErrNoTarget      = errors.New("asset has no entity_id")
	ErrUnknownTarget = errors.New("entity_id does not name a world object")
)

// Importer reads assets relative to a root directory.
type Importer struct {
	root   string
	logger *log.Logger
}

// NewImporter creates an importer for root. A nil logger discards output.
func NewImporter(root string, logger *log.Logger) *Importer {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Importer{root: root, logger: logger}
}

// LoadIndex reads and decodes the index file name inside the root.
func (i *Importer) LoadIndex(name string) ([]Asset, error) {
	path := filepath.Join(i.root, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("asset: cannot read index %s: %w", path, err)
	}

	var index []Asset
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &index)
	default:
		err = json.Unmarshal(data, &index)
	}
	if err != nil {
		return nil, fmt.Errorf("asset: cannot parse index %s: %w", path, err)
	}

	i.logger.Info("loaded asset index", "path", path, "assets", len(index))
	return index, nil
}

// Import decodes one asset and attaches it to its target in w.
func (i *Importer) Import(a Asset, w *world.World) error {
	path := filepath.Join(i.root, a.Path)

	if a.Type != TypeTexture {
		return &ImportError{Asset: path, Err: ErrUnknownType}
	}

	// Resolve the target before decoding so bad entries fail fast
	attach, err := resolve(a.EntityID, w)
	if err != nil {
		return &ImportError{Asset: path, Err: err}
	}

	img, err := decode(path)
	if err != nil {
		return &ImportError{Asset: path, Err: err}
	}
	attach(img)

	b := img.Bounds()
	i.logger.Debug("imported texture", "path", path, "target", a.EntityID, "w", b.Dx(), "h", b.Dy())
	return nil
}

// ImportAll imports assets in order and stops at the first failure. Targets
// imported before the failure keep their textures.
func (i *Importer) ImportAll(assets []Asset, w *world.World) error {
	for _, a := range assets {
		if err := i.Import(a, w); err != nil {
			return err
		}
	}
	return nil
}

// resolve returns a function that stores a texture on the named target.
func resolve(id string, w *world.World) (func(image.Image), error) {
	switch id {
	case "":
		return nil, ErrNoTarget
	case TargetPlayer:
		return w.Player.Entity.SetTexture, nil
	case TargetBackground:
		return func(img image.Image) { w.Background = img }, nil
	}

	n, err := strconv.Atoi(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, id)
	}
	e := w.Entity(world.Handle(n))
	if e == nil {
		return nil, fmt.Errorf("%w: no entity with handle %d", ErrUnknownTarget, n)
	}
	return e.SetTexture, nil
}

// decode reads an image file in any registered format.
func decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}
