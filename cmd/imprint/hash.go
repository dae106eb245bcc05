package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"imprint-hq/imprint/pkg/digest"
)

var (
	hashLower    bool
	hashText     bool
	hashEncoding string
)

var hashCmd = &cobra.Command{
	Use:   "hash [file...]",
	Short: "Print SHA-256 digests of files or stdin",
	Long: `Print the SHA-256 digest of each file as 64 hex characters. With no
arguments, stdin is digested.

By default input is treated as raw bytes. With --text the input is treated
as UTF-8 text and re-encoded under --encoding before digesting, so the same
text digested under different encodings yields different fingerprints.`,
	RunE: runHash,
}

func init() {
	hashCmd.Flags().BoolVar(&hashLower, "lower", false, "print lowercase hex")
	hashCmd.Flags().BoolVar(&hashText, "text", false, "treat input as text and re-encode before digesting")
	hashCmd.Flags().StringVar(&hashEncoding, "encoding", "", "IANA encoding name for --text (default UTF-8)")
	rootCmd.AddCommand(hashCmd)
}

func runHash(cmd *cobra.Command, args []string) error {
	if hashEncoding != "" && !hashText {
		return fmt.Errorf("--encoding requires --text")
	}

	upper := !hashLower

	if len(args) == 0 {
		sum, err := hashStream(os.Stdin, upper)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  -\n", sum)
		return nil
	}

	for _, path := range args {
		if path == "-" {
			sum, err := hashStream(os.Stdin, upper)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  -\n", sum)
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %q: %w", path, err)
		}
		sum, err := hashStream(f, upper)
		f.Close()
		if err != nil {
			return fmt.Errorf("hash %q: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", sum, path)
	}
	return nil
}

func hashStream(r io.Reader, upper bool) (string, error) {
	if !hashText {
		return digest.SHA256HexReader(r, upper)
	}

	enc, err := digest.ResolveEncoding(hashEncoding)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return digest.SHA256HexText(string(data), enc, upper)
}
