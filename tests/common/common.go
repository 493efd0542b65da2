package common

import (
	"fmdverse/api/models"
	"fmdverse/api/models/constants"
	"fmdverse/api/models/constants/column"
	"fmdverse/api/models/metadata"
	"fmt"
	"os"
	"path"
	"runtime"

	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v2"
)

// InitConfig reads test.config.yml and resolves its data paths relative
// to this folder.
func InitConfig() *models.Config {
	var cfg models.Config

	// retrieve common's test.config
	f, err := os.Open(fmt.Sprintf("%s/test.config.yml", folder()))
	if err != nil {
		processError(err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&cfg)
	if err != nil {
		processError(err)
	}

	cfg.Api.MetadataSource = DataPath(path.Base(cfg.Api.MetadataSource))
	cfg.Api.TreePath = DataPath(path.Base(cfg.Api.TreePath))

	return &cfg
}

// DataPath returns the absolute path of a fixture under tests/common/data.
func DataPath(name string) string {
	return path.Join(folder(), "data", name)
}

func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// KenyaNigeriaDataset is the three-row example used throughout the
// pipeline tests.
func KenyaNigeriaDataset() *metadata.Dataset {
	return metadata.NewDataset("memory",
		[]constants.Column{column.Accession, column.Country, column.Serotype},
		[]metadata.Record{
			{Accession: "A1", Country: metadata.String("Kenya"), Serotype: metadata.String("SAT1")},
			{Accession: "A2", Country: metadata.String("Kenya"), Serotype: metadata.String("SAT2")},
			{Accession: "A3", Country: metadata.String("Nigeria"), Serotype: metadata.String("SAT1")},
		})
}

// FullDataset mirrors data/metadata.csv.
func FullDataset() *metadata.Dataset {
	s := metadata.String
	i := metadata.Int
	return metadata.NewDataset("memory", column.All,
		[]metadata.Record{
			{Accession: "A1", Country: s("Kenya"), Serotype: s("SAT1"), Lineage: s("SAT1/I"), Year: i(2012)},
			{Accession: "A2", Country: s("Kenya"), Serotype: s("SAT2"), Lineage: s("SAT2/IV"), Year: i(2013)},
			{Accession: "A3", Country: s("Nigeria"), Serotype: s("SAT1"), Year: i(2012)},
			{Accession: "A4", Country: s("Egypt"), Serotype: s("O"), Lineage: s("O/EA-3"), Year: i(2016)},
			{Accession: "A5", Country: s("Kenya"), Serotype: s("O"), Lineage: s("O/EA-2")},
			{Accession: "A6", Serotype: s("A"), Lineage: s("A/AFRICA/G-I"), Year: i(2013)},
			{Accession: "A6", Country: s("Ethiopia"), Serotype: s("A"), Lineage: s("A/AFRICA/G-IV"), Year: i(2016)},
		})
}

func folder() string {
	// get this file's path
	_, filename, _, _ := runtime.Caller(0)
	return path.Dir(filename)
}

func processError(err error) {
	fmt.Println(err)
	os.Exit(2)
}
