package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/afumu/corpus/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	rootCmd.AddCommand(passwdCmd)
}

var passwdCmd = &cobra.Command{
	Use:   "passwd [password]",
	Short: "设置审计查询使用的管理员密码",
	Long:  `将管理员密码的 bcrypt 哈希写入配置文件的 ADMIN_PASSWORD_HASH。不带参数时从标准输入读取一行。`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, closer, err := loadConfig()
		if err != nil {
			return err
		}
		defer closer.Close()

		var password string
		if len(args) == 1 {
			password = args[0]
		} else {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("读取密码失败: %w", err)
			}
			password = strings.TrimRight(line, "\r\n")
		}

		if len(password) < 4 {
			return errors.New("密码长度不能少于4位")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("密码加密失败: %w", err)
		}
		if err := config.SetValue(configFile, "ADMIN_PASSWORD_HASH", string(hash)); err != nil {
			return err
		}

		log.Info().Str("path", configFile).Msg("管理员密码已更新，重启服务后生效")
		fmt.Fprintf(cmd.OutOrStdout(), "管理员密码已写入 %s\n", configFile)
		return nil
	},
}
