package bundle_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/imamik/mwpack/internal/bundle"
)

var payload = map[string]string{
	"memo.md":             "# Memo\n\nbody\n",
	"cluster_report.json": "{\"nodes\":796}\n",
	"build_summary.json":  "{}\n",
	"assets/fig 1.txt":    "figure",
	"assets/z/deep.bin":   "\x00\x01\x02",
}

func populate(dir string) {
	for rel, content := range payload {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
		Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
	}
}

var _ = Describe("Create", func() {
	var (
		ctx  context.Context
		dirA string
		dirB string
	)

	BeforeEach(func() {
		ctx = context.Background()
		dirA = GinkgoT().TempDir()
		dirB = GinkgoT().TempDir()
		populate(dirA)
		populate(dirB)
	})

	for _, format := range bundle.Formats {
		Context("with format "+string(format), func() {
			It("produces identical bytes for identical directories", func() {
				pathA, manifestA, err := bundle.Create(ctx, dirA, format, 1_700_000_000)
				Expect(err).NotTo(HaveOccurred())
				pathB, manifestB, err := bundle.Create(ctx, dirB, format, 1_700_000_000)
				Expect(err).NotTo(HaveOccurred())

				Expect(os.ReadFile(pathA)).To(Equal(mustRead(pathB)))
				Expect(manifestA).To(Equal(manifestB))

				sumA, err := bundle.ChecksumManifest(manifestA)
				Expect(err).NotTo(HaveOccurred())
				Expect(bundle.ChecksumManifest(manifestB)).To(Equal(sumA))
			})

			It("lists sorted payload paths followed by the manifest exactly once", func() {
				path, manifest, err := bundle.Create(ctx, dirA, format, 0)
				Expect(err).NotTo(HaveOccurred())

				names, err := bundle.ReadEntryNames(path)
				Expect(err).NotTo(HaveOccurred())
				Expect(names).To(Equal([]string{
					"assets/fig 1.txt",
					"assets/z/deep.bin",
					"build_summary.json",
					"cluster_report.json",
					"memo.md",
					"MANIFEST.json",
				}))
				Expect(manifest.Files).To(HaveLen(len(payload)))
			})

			It("ignores its own previous output when repackaging", func() {
				first, _, err := bundle.Create(ctx, dirA, format, 42)
				Expect(err).NotTo(HaveOccurred())
				before := mustRead(first)

				second, _, err := bundle.Create(ctx, dirA, format, 42)
				Expect(err).NotTo(HaveOccurred())
				Expect(second).To(Equal(first))
				Expect(mustRead(second)).To(Equal(before))
			})

			It("changes when the source date epoch changes", func() {
				pathA, _, err := bundle.Create(ctx, dirA, format, 1_700_000_000)
				Expect(err).NotTo(HaveOccurred())
				pathB, _, err := bundle.Create(ctx, dirB, format, 1_700_000_001)
				Expect(err).NotTo(HaveOccurred())

				Expect(mustRead(pathA)).NotTo(Equal(mustRead(pathB)))
			})
		})
	}
})

func mustRead(path string) []byte {
	data, err := os.ReadFile(path)
	Expect(err).NotTo(HaveOccurred())
	return data
}
