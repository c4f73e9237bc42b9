package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"

	"github.com/kitabu/kitabu/internal/file"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

type config struct {
	APIAddress string `json:"apiAddress"`
	APIToken   string `json:"apiToken"`
	Email      string `json:"email,omitempty"`
}

func getConfig() (*config, error) {
	kitabuHome, err := getKitabuHome()
	if err != nil {
		return nil, errors.Wrapf(err, "error finding kitabu home")
	}
	return readConfig(path.Join(kitabuHome, "config"))
}

func readConfig(kitabuConfigFile string) (*config, error) {
	if !file.Exists(kitabuConfigFile) {
		return nil, errors.Errorf(
			"no kitabu configuration was found at %s; please use "+
				"`kitabu login` to continue\n",
			kitabuConfigFile,
		)
	}

	configBytes, err := ioutil.ReadFile(kitabuConfigFile)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error reading kitabu config file at %s",
			kitabuConfigFile,
		)
	}

	config := &config{}
	if err := json.Unmarshal(configBytes, config); err != nil {
		return nil, errors.Wrapf(
			err,
			"error parsing kitabu config file at %s",
			kitabuConfigFile,
		)
	}

	return config, nil
}

func saveConfig(config *config) error {
	kitabuHome, err := getKitabuHome()
	if err != nil {
		return errors.Wrapf(err, "error finding kitabu home")
	}
	if _, err = os.Stat(kitabuHome); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(
				err,
				"error checking for existence of kitabu home at %s",
				kitabuHome,
			)
		}
		// The directory doesn't exist-- create it
		if err = os.MkdirAll(kitabuHome, 0755); err != nil {
			return errors.Wrapf(
				err,
				"error creating kitabu home at %s",
				kitabuHome,
			)
		}
	}
	kitabuConfigFile := path.Join(kitabuHome, "config")

	configBytes, err := json.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "error marshaling config")
	}
	if err :=
		ioutil.WriteFile(kitabuConfigFile, configBytes, 0600); err != nil {
		return errors.Wrapf(err, "error writing to %s", kitabuConfigFile)
	}
	return nil
}

func deleteConfig() error {
	kitabuHome, err := getKitabuHome()
	if err != nil {
		return errors.Wrapf(err, "error finding kitabu home")
	}
	kitabuConfigFile := path.Join(kitabuHome, "config")

	if err := os.Remove(kitabuConfigFile); err != nil {
		return errors.Wrap(err, "error deleting configuration")
	}

	return nil
}

func getKitabuHome() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", errors.Wrap(err, "error locating user's home directory")
	}

	return path.Join(homeDir, ".kitabu"), nil
}
