// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopherdmg/gopherdmg/curated"
)

// FileExtensions is the list of file extensions that are recognised as
// cartridge files.
var FileExtensions = [...]string{".GB", ".GBC", ".SGB", ".BIN", ".ROM"}

// Sentinal errors.
const (
	UnexpectedHash = "cartridgeloader: unexpected hash value"
	UnsupportedURL = "cartridgeloader: unsupported URL scheme (%s)"
	LoadError      = "cartridgeloader: %v"
)

// Loader is used to specify the cartridge to use when attaching to the
// console.
type Loader struct {
	// filename of cartridge to load. can be a http or https URL
	Filename string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// ShortName returns the base of the filename without the extension.
func (cl Loader) ShortName() string {
	n := filepath.Base(cl.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// IsLocal returns true if the cartridge is in the local file system. Battery
// backed RAM is only persisted for local cartridges.
func (cl Loader) IsLocal() bool {
	u, err := url.Parse(cl.Filename)
	if err != nil {
		return true
	}
	return u.Scheme == "" || u.Scheme == "file" || len(u.Scheme) == 1
}

// SavePath returns the path of the battery save file for the cartridge. The
// extension of the cartridge filename is replaced with ".sav".
func (cl Loader) SavePath() string {
	return strings.TrimSuffix(cl.Filename, filepath.Ext(cl.Filename)) + ".sav"
}

// Load the cartridge data. Filenames with a http or https scheme are
// downloaded, anything else is read from the file system. Calling Load() on
// a Loader that has already loaded does nothing.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	var err error

	u, perr := url.Parse(cl.Filename)
	scheme := "file"
	if perr == nil && len(u.Scheme) > 1 {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		var resp *http.Response
		resp, err = http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, resp.Status)
		}
		cl.Data, err = io.ReadAll(resp.Body)
	case "file":
		cl.Data, err = os.ReadFile(strings.TrimPrefix(cl.Filename, "file://"))
	default:
		return curated.Errorf(UnsupportedURL, scheme)
	}

	if err != nil {
		cl.Data = nil
		return curated.Errorf(LoadError, err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))
	if cl.Hash != "" && cl.Hash != hash {
		cl.Data = nil
		return curated.Errorf(UnexpectedHash)
	}
	cl.Hash = hash

	return nil
}
