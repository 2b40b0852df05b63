/*
 * m14asm - Main process.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package main

import (
	"log/slog"
	"os"
	"path/filepath"

	getopt "github.com/pborman/getopt/v2"

	"github.com/mdyer/m14asm/asm"
	"github.com/mdyer/m14asm/output/diagprint"
	"github.com/mdyer/m14asm/output/objwriter"
	logger "github.com/mdyer/m14asm/util/logger"
)

var Logger *slog.Logger

func main() {
	optOutDir := getopt.StringLong("out-dir", 'o', "", "Directory for .ob/.ent/.ext output (default: alongside input)")
	optVerbose := getopt.BoolLong("verbose", 'v', "Verbose logging")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.SetParameters("FILE [FILE ...]")
	getopt.Parse()

	if *optHelp || getopt.NArgs() == 0 {
		getopt.Usage()
		os.Exit(0)
	}

	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelWarn)
	if *optVerbose {
		programLevel.Set(slog.LevelDebug)
	}
	Logger = slog.New(logger.NewHandler(&slog.HandlerOptions{Level: programLevel}, optVerbose))
	slog.SetDefault(Logger)

	failed := false
	for _, name := range getopt.Args() {
		if !assembleOne(name, *optOutDir) {
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

// assembleOne reads name+".as", assembles it, writes whichever output
// files apply, and reports diagnostics. It returns false if the file
// failed to assemble.
func assembleOne(name, outDir string) bool {
	inPath := name + ".as"
	source, err := os.ReadFile(inPath)
	if err != nil {
		Logger.Error("cannot read input file", "file", inPath, "error", err)
		return false
	}

	u := asm.AssembleFile(inPath, string(source))
	diagprint.Report(os.Stderr, u.Diags.Items())

	ok := !u.Diags.HasErrors()
	diagprint.Summary(os.Stderr, inPath, ok)
	if !ok {
		return false
	}

	base := name
	if outDir != "" {
		base = filepath.Join(outDir, filepath.Base(name))
	}

	if err := os.WriteFile(base+".ob", []byte(objwriter.Object(u)), 0o644); err != nil {
		Logger.Error("cannot write object file", "file", base+".ob", "error", err)
		return false
	}
	if ent := objwriter.Entries(u); ent != "" {
		if err := os.WriteFile(base+".ent", []byte(ent), 0o644); err != nil {
			Logger.Error("cannot write entry file", "file", base+".ent", "error", err)
			return false
		}
	}
	if ext := objwriter.Externs(u); ext != "" {
		if err := os.WriteFile(base+".ext", []byte(ext), 0o644); err != nil {
			Logger.Error("cannot write extern file", "file", base+".ext", "error", err)
			return false
		}
	}
	return true
}
