package config

import _ "embed"

// DefaultConfigYAML 嵌入的默认配置，外部配置文件与环境变量在其上覆盖
//
//go:embed config.yaml
var DefaultConfigYAML []byte
