package project

import "os"

// backupExisting moves an existing file aside to path+".bak" so a rewrite
// never destroys the previous revision. A missing file is not an error;
// an existing backup is replaced.
func backupExisting(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return os.Rename(path, path+".bak")
}
