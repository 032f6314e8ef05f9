// Package commands implements the unitranscode CLI commands.
package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/zyl910/zlutf"
)

var (
	localeFlag  string
	langFlag    string
	verboseFlag bool
)

// langToCharset maps a BCP-47 base language to the narrow charset most
// commonly paired with it, used when --locale is not given explicitly but
// --lang names a language whose conventional 8-bit encoding is not
// Windows-1252. Unlisted languages fall through to the narrow codec's
// built-in default.
var langToCharset = map[language.Base]string{
	language.MustParseBase("ja"): "shift_jis",
	language.MustParseBase("ko"): "euc-kr",
	language.MustParseBase("zh"): "gbk",
	language.MustParseBase("ru"): "koi8-r",
	language.MustParseBase("el"): "iso-8859-7",
}

var rootCmd = &cobra.Command{
	Use:   "unitranscode",
	Short: "Streaming Unicode transcoder",
	Long: `unitranscode transcodes a byte stream between narrow, UTF-8, UTF-16,
and UTF-32 encodings using the zlutf streaming transcoder.

Use "unitranscode [command] --help" for more information about a command.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLocale,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "", "IANA charset name for the narrow codec (e.g. windows-1252, shift_jis); overrides --lang")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "BCP-47 language tag (e.g. ja-JP) used to pick a conventional narrow charset")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log decode/encode errors to stderr")

	rootCmd.AddCommand(transcodeCmd)
	rootCmd.AddCommand(hexdumpCmd)
}

// Execute runs the root command. Called once from main.main.
func Execute() error {
	return rootCmd.Execute()
}

// setupLocale establishes the narrow codec's host delegate before any
// subcommand runs, mirroring the real setlocale(3) call spec.md §1 makes
// the caller responsible for. --locale names an IANA charset directly;
// --lang names a BCP-47 language and picks that language's conventional
// charset via langToCharset. --locale wins if both are given. With
// neither, the narrow codec keeps its built-in Windows-1252 default.
func setupLocale(cmd *cobra.Command, args []string) error {
	if verboseFlag {
		zlutf.SetLogger(zerolog.New(os.Stderr).With().Timestamp().Logger())
	}

	charset := localeFlag
	if charset == "" && langFlag != "" {
		tag, err := language.Parse(langFlag)
		if err != nil {
			return err
		}
		base, _ := tag.Base()
		charset = langToCharset[base]
	}
	if charset == "" {
		return nil
	}

	enc, err := zlutf.EncodingByName(charset)
	if err != nil {
		return err
	}
	zlutf.SetNarrowEncoding(enc)
	return nil
}
