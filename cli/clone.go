package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"exifgraft/core"
	"exifgraft/core/fileutil"
	"exifgraft/core/header"
)

func newCloneCmd() *cobra.Command {
	var outPath string
	var showHash bool
	var noBackup bool

	cmd := &cobra.Command{
		Use:   "clone SRC DEST",
		Short: "Graft the EXIF block of SRC onto DEST",
		Long: "Copy the EXIF metadata block of SRC into DEST, replacing any block\n" +
			"DEST already carries. DEST is rewritten in place unless -o names a\n" +
			"different output; before an in-place rewrite the previous bytes are\n" +
			"backed up under the user cache directory.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cloneHandler(args[0], args[1], outPath, showHash, noBackup)
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the spliced file here instead of in place")
	cmd.Flags().BoolVar(&showHash, "show-hash", false, "Print source and output MD5s")
	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "Skip the cache-dir backup when rewriting in place")
	return cmd
}

func cloneHandler(srcPath, destPath, outPath string, showHash, noBackup bool) error {
	src, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}
	dest, err := os.ReadFile(destPath)
	if err != nil {
		return err
	}

	printer := core.NewPrinter(flagJSON, flagVerbose)
	if len(header.ParseBytes(src).ExifBlock()) <= 4 {
		printer.PrintInfo(fmt.Sprintf("%s carries no EXIF block; writing destination unchanged", srcPath))
	}

	spliced := header.CloneExif(src, dest)
	if spliced == nil {
		return fmt.Errorf("nothing to graft: empty source or destination")
	}

	out := core.ResolveOutPath(destPath, outPath)
	if out == destPath && !noBackup {
		backup, err := backupFile(destPath, dest)
		if err != nil {
			return fmt.Errorf("backing up %s: %w", destPath, err)
		}
		printer.PrintInfo("backup written to " + backup)
	}
	if err := writeFileAtomic(out, spliced); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("wrote %s (%d bytes)", out, len(spliced)))
	if showHash {
		printer.PrintInfo("source md5 " + fileutil.MD5Sum(src))
		printer.PrintInfo("output md5 " + fileutil.MD5Sum(spliced))
	}
	return nil
}

// backupFile stores the current bytes of path in the cache dir before an
// in-place rewrite, returning the backup path.
func backupFile(path string, data []byte) (string, error) {
	backup := filepath.Join(fileutil.CacheDir("exifgraft"), filepath.Base(path)+".bak")
	if err := os.WriteFile(backup, data, 0644); err != nil {
		return "", err
	}
	return backup, nil
}

// writeFileAtomic writes data to a temp file next to path and renames it
// into place, so a crash cannot leave a half-written image.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
