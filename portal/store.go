package portal

import (
	"io/ioutil"
	"os"
	"path"
	"strings"

	"github.com/kitabu/kitabu/internal/file"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

const (
	tokenFileName   = "student_token"
	messageFileName = "login_message"
)

// PortalHome returns the directory holding the portal's persisted session
// state.
func PortalHome() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "error locating user's home directory")
	}
	return path.Join(homeDir, ".kitabu-portal"), nil
}

// FileTokenStore persists the bearer token in a file under the portal home
// dir.
type FileTokenStore struct {
	dir string
}

// NewFileTokenStore returns a TokenStore rooted at the given directory.
func NewFileTokenStore(dir string) *FileTokenStore {
	return &FileTokenStore{dir: dir}
}

func (f *FileTokenStore) Get() (string, error) {
	tokenFile := path.Join(f.dir, tokenFileName)
	if !file.Exists(tokenFile) {
		return "", nil
	}
	tokenBytes, err := ioutil.ReadFile(tokenFile)
	if err != nil {
		return "", errors.Wrapf(err, "error reading token file at %s", tokenFile)
	}
	return strings.TrimSpace(string(tokenBytes)), nil
}

func (f *FileTokenStore) Set(token string) error {
	if err := ensureDir(f.dir); err != nil {
		return err
	}
	tokenFile := path.Join(f.dir, tokenFileName)
	if err :=
		ioutil.WriteFile(tokenFile, []byte(token), 0600); err != nil {
		return errors.Wrapf(err, "error writing to %s", tokenFile)
	}
	return nil
}

func (f *FileTokenStore) Delete() error {
	tokenFile := path.Join(f.dir, tokenFileName)
	if err := os.Remove(tokenFile); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "error deleting %s", tokenFile)
	}
	return nil
}

// FileMessageStore persists the one-shot login message in a file under the
// portal home dir. Consume reads it and deletes it in the same step.
type FileMessageStore struct {
	dir string
}

// NewFileMessageStore returns a MessageStore rooted at the given directory.
func NewFileMessageStore(dir string) *FileMessageStore {
	return &FileMessageStore{dir: dir}
}

func (f *FileMessageStore) Set(message string) error {
	if err := ensureDir(f.dir); err != nil {
		return err
	}
	messageFile := path.Join(f.dir, messageFileName)
	if err :=
		ioutil.WriteFile(messageFile, []byte(message), 0600); err != nil {
		return errors.Wrapf(err, "error writing to %s", messageFile)
	}
	return nil
}

func (f *FileMessageStore) Consume() (string, error) {
	messageFile := path.Join(f.dir, messageFileName)
	if !file.Exists(messageFile) {
		return "", nil
	}
	messageBytes, err := ioutil.ReadFile(messageFile)
	if err != nil {
		return "", errors.Wrapf(
			err,
			"error reading message file at %s",
			messageFile,
		)
	}
	if err := os.Remove(messageFile); err != nil && !os.IsNotExist(err) {
		return "", errors.Wrapf(err, "error deleting %s", messageFile)
	}
	return string(messageBytes), nil
}

func ensureDir(dir string) error {
	if _, err := os.Stat(dir); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(
				err,
				"error checking for existence of %s",
				dir,
			)
		}
		// The directory doesn't exist-- create it
		if err = os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "error creating %s", dir)
		}
	}
	return nil
}
