/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package bst

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/seipan/bst/bst"
)

var log = logrus.WithField("pkg", "bst")

var rootCmd = &cobra.Command{
	Use:   "bst",
	Short: "Load N keys into a binary search tree and a plain map and time both",
	Long:  ``,

	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := cmd.Flags().GetString("N")
		if err != nil {
			return errors.Wrap(err, "unable to read flag N")
		}

		n, err := strconv.Atoi(raw)
		if err != nil {
			return errors.Wrapf(err, "invalid key count %q", raw)
		}
		if n <= 0 {
			return errors.Errorf("key count must be positive, got %d", n)
		}

		keys := rand.Perm(n)

		mdp := bst.NewDefaultdb[string, string]()
		defer mdp.Close()

		log.Infof("default map set: %s", Measurer(func() { SetMap(keys, mdp) }))
		log.Infof("default map get: %s", Measurer(func() { GetMap(keys, mdp) }))

		tree := bst.New[int]()
		log.Infof("bst insert: %s", Measurer(func() { SetTree(keys, tree) }))
		log.Infof("bst find: %s", Measurer(func() { GetTree(keys, tree) }))

		PrintSorted(tree, 10)
		return nil
	},
}

// SetMap loads every key into the baseline map store.
func SetMap(keys []int, mdp *bst.Defaultdb[string, string]) {
	for _, k := range keys {
		s := strconv.Itoa(k)
		mdp.Set(s, s)
	}
}

// GetMap looks up every key in the baseline map store.
func GetMap(keys []int, mdp *bst.Defaultdb[string, string]) {
	for _, k := range keys {
		mdp.Get(strconv.Itoa(k))
	}
}

// SetTree inserts every key into the tree.
func SetTree(keys []int, tree *bst.Tree[int]) {
	for _, k := range keys {
		tree.Insert(k)
	}
}

// GetTree finds every key in the tree.
func GetTree(keys []int, tree *bst.Tree[int]) {
	for _, k := range keys {
		tree.Find(k)
	}
}

// PrintSorted prints the first limit values of the tree in sorted
// order to show in-order iteration works on the loaded keys.
func PrintSorted(tree *bst.Tree[int], limit int) {
	fmt.Printf("first %d of %d keys in order:", limit, tree.Len())
	printed := 0
	tree.Ascend(func(v int) bool {
		fmt.Printf(" %d", v)
		printed++
		return printed < limit
	})
	fmt.Println()
}

// Measurer times a single benchmark step.
func Measurer(fnc func()) time.Duration {
	start := time.Now()
	fnc()
	return time.Since(start)
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringP("N", "N", "", "number of keys to load")
}
