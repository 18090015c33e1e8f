package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/afumu/corpus/internal/dict"
	"github.com/afumu/corpus/internal/model"
	"github.com/afumu/corpus/pkg/corpus"
	"github.com/afumu/corpus/pkg/tokenizer"
	"github.com/afumu/corpus/web/export"
	"github.com/spf13/cobra"
)

var (
	analyzeUserDict  string
	analyzeStopWords string
	analyzeTopN      int
	analyzeFormat    string
	analyzeOutput    string
	analyzeDeletePun bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeUserDict, "user-dict", "u", "", "用户词典文件，每行一个词")
	analyzeCmd.Flags().StringVarP(&analyzeStopWords, "stop-words", "s", "", "停用词文件，每行一个词")
	analyzeCmd.Flags().IntVarP(&analyzeTopN, "top", "n", 0, "每张表保留的条数，默认取配置 TOP_N")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "json", "输出格式: json, csv, xlsx, docx")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "输出文件，默认写到标准输出")
	analyzeCmd.Flags().BoolVar(&analyzeDeletePun, "delete-punctuation", false, "删除标点")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "分析文件（或标准输入）中的文本",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, closer, err := loadConfig()
		if err != nil {
			return err
		}
		defer closer.Close()

		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		userWords, err := dict.ReadWords(analyzeUserDict)
		if err != nil {
			return fmt.Errorf("读取用户词典失败: %w", err)
		}
		stopWords, err := dict.ReadWords(analyzeStopWords)
		if err != nil {
			return fmt.Errorf("读取停用词失败: %w", err)
		}

		tok, err := tokenizer.New(conf.Tokenizer, conf.TokenizerConfig())
		if err != nil {
			return err
		}
		defer tok.Close()

		topN := analyzeTopN
		if topN <= 0 {
			topN = conf.TopN
		}
		result, err := corpus.Analyze(tok, corpus.Request{
			Text:              strings.NewReplacer("\r\n", "", "\n", "", "\r", "", "\t", "").Replace(text),
			UserWords:         userWords,
			StopWords:         stopWords,
			DeletePunctuation: analyzeDeletePun,
		}, corpus.Options{
			HonorDeletePunctuation: conf.HonorDeletePunctuation,
			CloudTopN:              conf.CloudTopN,
		}, topN)
		if err != nil {
			return err
		}

		return writeResult(cmd.OutOrStdout(), model.NewCorpusAnalysis(result))
	},
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("读取输入失败: %w", err)
	}
	return string(data), nil
}

func writeResult(stdout io.Writer, a *model.CorpusAnalysis) error {
	var data []byte
	if analyzeFormat == "json" {
		var err error
		data, err = json.MarshalIndent(a, "", "  ")
		if err != nil {
			return err
		}
		data = append(data, '\n')
	} else {
		file, err := (&export.Service{}).Export(a, analyzeFormat, "corpus")
		if err != nil {
			return err
		}
		data = file.Data
	}

	if analyzeOutput == "" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(analyzeOutput, data, 0644)
}
