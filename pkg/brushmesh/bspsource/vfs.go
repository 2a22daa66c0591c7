package bspsource

import (
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	vpk "github.com/galaco/vpk2"
	"github.com/pkg/errors"
)

type vfs struct {
	vpks []*vpk.VPK
}

var errFileNotFound = errors.New("file not found")

func newVFS(vpkPaths []string) (vfs, error) {
	var v vfs

	for _, p := range vpkPaths {
		pak, err := vpk.Open(vpk.MultiVPK(p))
		if err != nil {
			return v, errors.Wrapf(err, "failed to open vpk %q", p)
		}

		v.vpks = append(v.vpks, pak)
	}

	return v, nil
}

// open opens filePath from disk, falling back to the VPK archives.
func (v vfs) open(filePath string) (io.ReadCloser, error) {
	f, err := os.Open(filePath)
	if err == nil {
		return f, nil
	}

	if !errors.Is(err, fs.ErrNotExist) || len(v.vpks) == 0 {
		return nil, errors.Wrapf(err, "failed to open %q", filePath)
	}

	// archive paths are relative and always use forward slashes
	name := strings.TrimPrefix(path.Clean(strings.ReplaceAll(filePath, `\`, "/")), "/")

	for _, pak := range v.vpks {
		vf, err := pak.Open(name)
		if err != nil {
			continue
		}

		stat, err := vf.Stat()
		if err == nil && stat.Size() > 0 {
			return vf, nil
		}

		vf.Close()
	}

	return nil, errors.Wrapf(errFileNotFound, "%s not found", filePath)
}
