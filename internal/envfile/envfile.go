package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/subosito/gotenv"
)

// Load applies an existing dotenv file to the process environment.
// A missing file is not an error; the probe may be the first thing to
// create it.
func Load(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return gotenv.Load(path)
}

// Persist sets key=value in the process environment and appends the
// pair to the dotenv file at path. The file is opened in append mode so
// prior entries are never rewritten. The returned error only concerns
// the file: the environment assignment has already taken effect and the
// caller may treat a file failure as a warning.
func Persist(key, value, path string) error {
	if err := os.Setenv(key, value); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(f, "%s=%s\n", key, value); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
