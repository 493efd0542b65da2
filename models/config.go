package models

type Config struct {
	Debug          bool   `envconfig:"FMDV_DEBUG" yaml:"debug"`
	SemVer         string `envconfig:"FMDV_SEMVER" default:"0.1.0" yaml:"semver"`
	ServiceContact string `envconfig:"FMDV_SERVICE_CONTACT" default:"mailto:maintainers@fmdverse.org" yaml:"serviceContact"`

	Api struct {
		Port                   string `envconfig:"FMDV_API_PORT" default:"5000" yaml:"port"`
		MetadataSource         string `envconfig:"FMDV_METADATA_SOURCE" default:"fmdv_master_dataset.csv" yaml:"metadataSource"`
		TreePath               string `envconfig:"FMDV_TREE_PATH" default:"fmdv_tree_full.nwk" yaml:"treePath"`
		TopN                   int    `envconfig:"FMDV_TOP_N" default:"10" yaml:"topN"`
		TableLimit             int    `envconfig:"FMDV_TABLE_LIMIT" default:"50" yaml:"tableLimit"`
		SourceFetchMaxRetries  uint64 `envconfig:"FMDV_SOURCE_FETCH_MAX_RETRIES" default:"5" yaml:"sourceFetchMaxRetries"`
		SourceFetchTimeoutSecs int    `envconfig:"FMDV_SOURCE_FETCH_TIMEOUT_SECONDS" default:"30" yaml:"sourceFetchTimeoutSeconds"`
	}
}
