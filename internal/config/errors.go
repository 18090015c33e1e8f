package config

import (
	"errors"
	"io/fs"
)

// viper 对显式 SetConfigFile 的缺失文件返回的是 *fs.PathError 而不是 ConfigFileNotFoundError。
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
