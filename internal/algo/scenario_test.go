package algo_test

import (
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/shiftzeros/internal/algo"
)

func run(nums ...int) (*algo.Machine, []algo.Record) {
	src, err := algo.NewFixedSource(nums)
	Expect(err).NotTo(HaveOccurred())

	m := algo.New(src, nil)
	var recs []algo.Record
	for i := 0; !m.Done(); i++ {
		Expect(i).To(BeNumerically("<", 100), "run did not finish")
		rec, err := m.Advance()
		Expect(err).NotTo(HaveOccurred())
		recs = append(recs, rec)
	}
	return m, recs
}

func count(recs []algo.Record, name algo.StateName) int {
	n := 0
	for _, r := range recs {
		if r.Entered(name) {
			n++
		}
	}
	return n
}

func sortedKeys(ctx algo.RunContext) []string {
	keys := ctx.Keys()
	sort.Strings(keys)
	return keys
}

var _ = Describe("Shift zeros left", func() {
	Describe("a mixed list", func() {
		var (
			m    *algo.Machine
			recs []algo.Record
		)

		BeforeEach(func() {
			m, recs = run(5, 0, 3, 0, 0, 2, 0, 1)
		})

		It("packs the zeros on the left", func() {
			Expect(m.State().Context().Numbers()).To(Equal([]int{0, 0, 0, 0, 5, 3, 2, 1}))
		})

		It("matches a replay of the swap effects", func() {
			list := recs[0].Before.Clone().List
			for _, r := range recs {
				if r.Event == algo.EventSwap {
					l, rr := r.Before.Current, r.Before.Current+r.Before.Zeros
					list[l], list[rr] = list[rr], list[l]
				}
			}
			final := m.State().Context()
			for i := range list {
				Expect(list[i].Key).To(Equal(final.List[i].Key))
			}
		})

		It("counts every zero", func() {
			Expect(m.State().Context().Zeros).To(Equal(4))
			Expect(count(recs, algo.StateMark)).To(Equal(4))
			Expect(count(recs, algo.StateSwap)).To(Equal(3))
		})

		It("adds exactly one zero per mark", func() {
			for _, r := range recs {
				if r.To() != algo.StateMark {
					continue
				}
				Expect(r.After.Zeros).To(Equal(r.Before.Zeros + 1))
				Expect(r.After.List[r.After.Current].Number).To(Equal(0))
				Expect(r.After.List[r.After.Current].MarkedAsZero).To(BeTrue())
			}
		})

		It("only permutes cells on swap", func() {
			for _, r := range recs {
				if r.Event != algo.EventSwap {
					continue
				}
				Expect(sortedKeys(r.After)).To(Equal(sortedKeys(r.Before)))
				l, rr := r.Before.Current, r.Before.Current+r.Before.Zeros
				Expect(r.After.List[l].Key).To(Equal(r.Before.List[rr].Key))
				Expect(r.After.List[rr].Key).To(Equal(r.Before.List[l].Key))
			}
		})

		It("restarts on reset", func() {
			rec, err := m.Advance()
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.Event).To(Equal(algo.EventReset))
			ctx := m.State().Context()
			Expect(m.State().Name()).To(Equal(algo.StateIdle))
			Expect(ctx.Current).To(Equal(algo.ListLen))
			Expect(ctx.Zeros).To(BeZero())
			Expect(ctx.Target).To(Equal(algo.NoTarget))
			Expect(ctx.Numbers()).To(Equal([]int{5, 0, 3, 0, 0, 2, 0, 1}))
		})
	})

	Describe("a list without zeros", func() {
		It("never marks or swaps", func() {
			m, recs := run(1, 2, 3, 4, 5, 6, 7, 8)
			Expect(count(recs, algo.StateMark)).To(BeZero())
			Expect(count(recs, algo.StateSwap)).To(BeZero())
			Expect(m.State().Context().Numbers()).To(Equal([]int{1, 2, 3, 4, 5, 6, 7, 8}))
		})

		It("walks step, match, passthrough, in place, next for every index", func() {
			_, recs := run(1, 2, 3, 4, 5, 6, 7, 8)

			var visited []algo.StateName
			for _, r := range recs {
				visited = append(visited, r.Path...)
			}
			Expect(visited).To(HaveLen(algo.ListLen*5 + 2))

			outer := []algo.StateName{
				algo.StateStep, algo.StateMatch, algo.StatePassthrough, algo.StateInPlace, algo.StateNext,
			}
			for i := 0; i < algo.ListLen; i++ {
				Expect(visited[i*5 : i*5+5]).To(Equal(outer))
			}
			Expect(visited[len(visited)-2:]).To(Equal([]algo.StateName{algo.StateStep, algo.StateDone}))
		})
	})

	Describe("a list of zeros", func() {
		It("marks on every outer step", func() {
			m, recs := run(0, 0, 0, 0, 0, 0, 0, 0)
			Expect(count(recs, algo.StateMark)).To(Equal(algo.ListLen))
			for _, r := range recs {
				Expect(r.Event).NotTo(Equal(algo.EventIsNonZero))
			}
			Expect(m.State().Context().Zeros).To(Equal(algo.ListLen))
		})
	})

	DescribeTable("random runs keep non-zero order",
		func(seed int64) {
			m := algo.New(algo.NewRandomSource(seed), nil)
			start := m.State().Context()
			for !m.Done() {
				_, err := m.Advance()
				Expect(err).NotTo(HaveOccurred())
			}

			var want, zeros []int
			for _, n := range start.Numbers() {
				if n == 0 {
					zeros = append(zeros, 0)
				} else {
					want = append(want, n)
				}
			}
			Expect(m.State().Context().Numbers()).To(Equal(append(zeros, want...)))
			Expect(sortedKeys(m.State().Context())).To(Equal(sortedKeys(start)))
		},
		Entry("seed 1", int64(1)),
		Entry("seed 2", int64(2)),
		Entry("seed 17", int64(17)),
		Entry("seed 4242", int64(4242)),
	)
})
