package calendar

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// HolidayFile is the on-disk holiday calendar:
//
//	region: ID
//	holidays:
//	  - date: "2024-12-25"
//	    name: Christmas Day
type HolidayFile struct {
	Region   string             `yaml:"region"`
	Holidays []HolidayFileEntry `yaml:"holidays"`
}

type HolidayFileEntry struct {
	Date string `yaml:"date"`
	Name string `yaml:"name"`
}

func LoadHolidayFile(path string) (HolidayFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return HolidayFile{}, err
	}
	defer f.Close()
	return ParseHolidayFile(f)
}

func ParseHolidayFile(r io.Reader) (HolidayFile, error) {
	var file HolidayFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return HolidayFile{}, nil
		}
		return HolidayFile{}, fmt.Errorf("decode holiday file: %w", err)
	}
	file.Region = strings.TrimSpace(file.Region)
	return file, nil
}
