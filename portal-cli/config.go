package main

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"

	"github.com/kitabu/kitabu/internal/file"
	"github.com/kitabu/kitabu/portal"
	"github.com/pkg/errors"
)

type config struct {
	APIAddress string `json:"apiAddress"`
}

func getConfig() (*config, error) {
	portalHome, err := portal.PortalHome()
	if err != nil {
		return nil, errors.Wrapf(err, "error finding portal home")
	}
	return readConfig(path.Join(portalHome, "config"))
}

func readConfig(portalConfigFile string) (*config, error) {
	if !file.Exists(portalConfigFile) {
		return nil, errors.Errorf(
			"no portal configuration was found at %s; please use "+
				"`kitabu-portal login` to continue\n",
			portalConfigFile,
		)
	}

	configBytes, err := ioutil.ReadFile(portalConfigFile)
	if err != nil {
		return nil, errors.Wrapf(
			err,
			"error reading portal config file at %s",
			portalConfigFile,
		)
	}

	config := &config{}
	if err := json.Unmarshal(configBytes, config); err != nil {
		return nil, errors.Wrapf(
			err,
			"error parsing portal config file at %s",
			portalConfigFile,
		)
	}

	return config, nil
}

func saveConfig(config *config) error {
	portalHome, err := portal.PortalHome()
	if err != nil {
		return errors.Wrapf(err, "error finding portal home")
	}
	if _, err = os.Stat(portalHome); err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(
				err,
				"error checking for existence of portal home at %s",
				portalHome,
			)
		}
		// The directory doesn't exist-- create it
		if err = os.MkdirAll(portalHome, 0755); err != nil {
			return errors.Wrapf(
				err,
				"error creating portal home at %s",
				portalHome,
			)
		}
	}
	portalConfigFile := path.Join(portalHome, "config")

	configBytes, err := json.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "error marshaling config")
	}
	if err :=
		ioutil.WriteFile(portalConfigFile, configBytes, 0600); err != nil {
		return errors.Wrapf(err, "error writing to %s", portalConfigFile)
	}
	return nil
}
