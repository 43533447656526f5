package motion

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
)

const (
	infoFileName = "spikeinterface_info.json"
	objectKind   = "Motion"

	// infoVersion marks the on-disk layout. Readers only check the
	// object kind, so the value is informational.
	infoVersion = "1.0.0"
)

// infoFile mirrors the JSON sidecar written next to the arrays. Field
// order matches the layout other tools emit.
type infoFile struct {
	Version             string `json:"version"`
	DevMode             bool   `json:"dev_mode"`
	Object              string `json:"object"`
	NumSegments         int    `json:"num_segments"`
	Direction           string `json:"direction"`
	InterpolationMethod string `json:"interpolation_method"`
}

// Save writes the Motion into folder as a JSON sidecar plus one .npy
// file per array, the layout other analysis tools read and write.
// The folder must not exist yet; parents are created as needed.
func (m *Motion) Save(folder string) error {
	if _, err := os.Stat(folder); err == nil {
		return fmt.Errorf("%w: %s", ErrFolderExists, folder)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("motion: checking %s: %w", folder, err)
	}
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("motion: creating %s: %w", folder, err)
	}

	info := infoFile{
		Version:             infoVersion,
		DevMode:             false,
		Object:              objectKind,
		NumSegments:         len(m.displacement),
		Direction:           m.direction.String(),
		InterpolationMethod: m.method.String(),
	}
	blob, err := json.MarshalIndent(info, "", "    ")
	if err != nil {
		return fmt.Errorf("motion: encoding info: %w", err)
	}
	if err := os.WriteFile(filepath.Join(folder, infoFileName), blob, 0o644); err != nil {
		return fmt.Errorf("motion: writing info: %w", err)
	}

	if err := writeNpy(filepath.Join(folder, "spatial_bins_um.npy"), m.spatialBins); err != nil {
		return err
	}
	for i := range m.displacement {
		name := fmt.Sprintf("displacement_seg%d.npy", i)
		if err := writeNpy(filepath.Join(folder, name), m.displacement[i]); err != nil {
			return err
		}
		name = fmt.Sprintf("temporal_bins_s_seg%d.npy", i)
		if err := writeNpy(filepath.Join(folder, name), m.temporalBins[i]); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a Motion previously written by Save or by a compatible
// tool. It fails with ErrNotMotionFolder when the folder lacks the
// sidecar or holds a different kind of object.
func Load(folder string) (*Motion, error) {
	blob, err := os.ReadFile(filepath.Join(folder, infoFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotMotionFolder, folder)
		}
		return nil, fmt.Errorf("motion: reading info: %w", err)
	}
	var info infoFile
	if err := json.Unmarshal(blob, &info); err != nil {
		return nil, fmt.Errorf("motion: decoding info: %w", err)
	}
	if info.Object != objectKind {
		return nil, fmt.Errorf("%w: %s", ErrNotMotionFolder, folder)
	}
	if info.NumSegments <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotMotionFolder, folder)
	}
	direction, err := ParseDirection(info.Direction)
	if err != nil {
		return nil, err
	}
	method, err := ParseInterpMethod(info.InterpolationMethod)
	if err != nil {
		return nil, err
	}

	var spatialBins []float64
	if err := readNpy(filepath.Join(folder, "spatial_bins_um.npy"), &spatialBins); err != nil {
		return nil, err
	}
	displacement := make([]*mat.Dense, info.NumSegments)
	temporalBins := make([][]float64, info.NumSegments)
	for i := 0; i < info.NumSegments; i++ {
		var d mat.Dense
		name := fmt.Sprintf("displacement_seg%d.npy", i)
		if err := readNpy(filepath.Join(folder, name), &d); err != nil {
			return nil, err
		}
		displacement[i] = &d
		name = fmt.Sprintf("temporal_bins_s_seg%d.npy", i)
		if err := readNpy(filepath.Join(folder, name), &temporalBins[i]); err != nil {
			return nil, err
		}
	}
	return NewMultiSegment(displacement, temporalBins, spatialBins,
		WithDirection(direction), WithInterpolation(method))
}

func writeNpy(path string, val interface{}) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("motion: creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("motion: closing %s: %w", path, cerr)
		}
	}()
	if err := npyio.Write(f, val); err != nil {
		return fmt.Errorf("motion: writing %s: %w", path, err)
	}
	return nil
}

func readNpy(path string, ptr interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("motion: opening %s: %w", path, err)
	}
	defer f.Close()
	if err := npyio.Read(f, ptr); err != nil {
		return fmt.Errorf("motion: reading %s: %w", path, err)
	}
	return nil
}
