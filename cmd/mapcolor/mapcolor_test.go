package mapcolor_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/go-arc/arco/cmd/mapcolor"
	"github.com/go-arc/arco/pkg/arco"
)

func TestMapColor(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "MapColor Suite")
}

var _ = Describe("Australia", func() {
	It("should model every region and border", func() {
		m, err := mapcolor.NewAustralia("red", "green").GetModel(context.Background())
		Expect(err).ToNot(HaveOccurred())
		Expect(m.Variables()).To(Equal(mapcolor.Regions))
		Expect(m.Edges()).To(Equal(mapcolor.Borders))
		Expect(m.Domains()["SA"]).To(Equal([]string{"red", "green"}))
	})
})

var _ = Describe("MapColor Command", func() {
	run := func(args ...string) (string, error) {
		cmd := mapcolor.NewMapColorCommand()
		out := &bytes.Buffer{}
		cmd.SetOut(out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		err := cmd.Execute()
		return out.String(), err
	}

	It("should print the first coloring in region order", func() {
		out, err := run()
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("WA = red\n" +
			"NT = green\n" +
			"Q = red\n" +
			"NSW = green\n" +
			"V = red\n" +
			"SA = blue\n" +
			"T = red\n"))
	})

	It("should prove two colors are not enough", func() {
		out, err := run("--colors", "red,green")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("no solution found: constraints not satisfiable\n"))
	})

	It("should color the map with the sat engine", func() {
		out, err := run("--engine", "sat")
		Expect(err).ToNot(HaveOccurred())

		coloring := map[arco.Identifier]string{}
		for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
			parts := strings.Split(line, " = ")
			Expect(parts).To(HaveLen(2))
			coloring[arco.Identifier(parts[0])] = parts[1]
		}
		Expect(coloring).To(HaveLen(7))
		for _, border := range mapcolor.Borders {
			Expect(coloring[border.A]).ToNot(Equal(coloring[border.B]), "border %s", border)
		}
	})

	It("should reject an unknown engine", func() {
		_, err := run("--engine", "quantum")
		Expect(err).To(MatchError(`unknown engine "quantum": expected backtracking or sat`))
	})
})
