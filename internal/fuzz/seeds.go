package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var builtinSeeds = []string{
	"",
	"a = b ? c : d",
	"x = /re[/]x/gi.test(y) / 2",
	"`a${`b${c}`}d`",
	"var a = 1, b = function () {}, c = x => x * 2",
	"label: for (var i = 0; i < 10; i++) { if (i) continue label; else break }",
	"switch (x) { case 1: y(); default: z }",
	"try { f() } catch (e) { throw e } finally {}",
	"class A extends B { m(a, ...rest) { return [a, , ...rest] } }",
	"o = { a, [b]: 1, get c() {}, set d(v) {}, async e() {}, 'f': 2, 3: 4 }",
	"async function f() { await g() }\nx = async () => 1",
	"a\n++b",
	"0x1F + 0o17 + 0b101 + 1.5e-3",
	"do x++; while (x < 3)",
	"with (o) { p = q }",
	"/* unterminated",
	"'unterminated",
	"(]",
}

func addCorpusSeeds(f *testing.F) {
	for _, seed := range builtinSeeds {
		f.Add([]byte(seed))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.js файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".js" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
