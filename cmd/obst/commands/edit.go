package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/obst/keyset"
	"github.com/katalvlaran/obst/render"
)

// editTree runs the edit submenu until the user goes back.
func (s *Shell) editTree() error {
	for {
		s.clear()
		s.header("Edit Tree")
		fmt.Fprintln(s.out, "1. Create a Tree from Scratch")
		fmt.Fprintln(s.out, "2. Add a New Node")
		fmt.Fprintln(s.out, "3. Delete a Node")
		fmt.Fprintln(s.out, "0. Back to Main Menu")

		choice, err := s.readChoice(3, "\nEnter your choice: ")
		if err != nil {
			return err
		}

		var flowErr error

		switch choice {
		case 1:
			flowErr = s.createTreeFromScratch()
		case 2:
			flowErr = s.addNode()
		case 3:
			flowErr = s.deleteNode()
		case 0:
			return nil
		}

		if flowErr != nil {
			return flowErr
		}
	}
}

// createTreeFromScratch replaces the current key set with freshly entered
// labels and weights, then rebuilds the tree. Hit weights are entered in
// label entry order; the pairs are sorted before the optional miss weights,
// which name gaps between adjacent sorted labels.
func (s *Shell) createTreeFromScratch() error {
	s.clear()
	s.header("Create Tree from Scratch")

	n, err := s.readCount("Enter number of nodes: ")
	if err != nil {
		return err
	}

	labels := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		label, labelErr := s.readLabel(fmt.Sprintf("Enter label %d: ", i), func(l string) bool {
			return slices.Contains(labels, l)
		})
		if labelErr != nil {
			return labelErr
		}

		labels = append(labels, label)
	}

	s.clear()
	fmt.Fprintf(s.out, "Data labels: %s\n", strings.Join(labels, " "))
	fmt.Fprint(s.out, "\nEntering probability of successful search....\n\n")

	p := make([]float64, 0, n)
	for _, label := range labels {
		v, pErr := s.readFloat(fmt.Sprintf("Enter p[%s]: ", label), false)
		if pErr != nil {
			return pErr
		}

		p = append(p, v)
	}

	sortPairs(labels, p)

	s.clear()
	fmt.Fprintf(s.out, "Data labels  : %s\n", strings.Join(labels, " "))
	fmt.Fprintf(s.out, "Probabilities: %s\n", joinFloats(p))

	q := make([]float64, n+1)
	useQ := false

	answer, answerErr := s.readLine("\nDo you want to enter probability of un-successful search (q)? ('y' to 'yes'): ")
	if answerErr != nil {
		return answerErr
	}

	if answer == "y" {
		useQ = true

		fmt.Fprint(s.out, "\nEntering probability of un-successful search....\n")

		q[0], err = s.readFloat(fmt.Sprintf("Enter probability of searching for a node less than %s: ", labels[0]), true)
		if err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			prompt := fmt.Sprintf("Enter probability of searching for a node between %s and %s: ", labels[i-1], labels[i])

			q[i], err = s.readFloat(prompt, true)
			if err != nil {
				return err
			}
		}

		q[n], err = s.readFloat(fmt.Sprintf("Enter probability of searching for a node greater than %s: ", labels[n-1]), true)
		if err != nil {
			return err
		}
	}

	set, setErr := keyset.FromSlices(labels, append([]float64{0}, p...), q)
	if setErr != nil {
		return setErr
	}

	s.set, s.useQ = set, useQ

	rebuildErr := s.rebuild()
	if rebuildErr != nil {
		return rebuildErr
	}

	s.clear()
	fmt.Fprintln(s.out, "You have entered the following data:")
	fmt.Fprintf(s.out, "Data labels      :  %s\n", strings.Join(labels, " "))
	fmt.Fprintf(s.out, "Probabilities (p):  %s\n", joinFloats(p))
	fmt.Fprintf(s.out, "Probabilities (q): %s\n", joinFloats(q))

	return s.pause()
}

// addNode inserts one label with its hit weight, then rebuilds.
func (s *Shell) addNode() error {
	s.clear()
	s.header("Add New Node")

	if s.useQ {
		return s.alert("You cannot edit a tree with un-successful search probabilities (q).")
	}

	label, err := s.readLabel("Enter the label for the new node: ", s.set.Has)
	if err != nil {
		return err
	}

	p, pErr := s.readFloat("Enter the probability of successful search (p): ", false)
	if pErr != nil {
		return pErr
	}

	addErr := s.set.Add(label, p, 0)
	if addErr != nil {
		return addErr
	}

	rebuildErr := s.rebuild()
	if rebuildErr != nil {
		return rebuildErr
	}

	return s.notice("Node added successfully!")
}

// deleteNode removes one label and its weights, then rebuilds.
func (s *Shell) deleteNode() error {
	s.clear()
	s.header("Delete Node")

	if s.useQ {
		return s.alert("You cannot edit a tree with un-successful search probabilities (q).")
	}

	if s.t.IsEmpty() {
		return s.alert("The tree is empty! Please create a tree first.")
	}

	s.header("Entered Data")
	fmt.Fprintln(s.out, render.KeySetTable(s.set))

	label, err := s.readLabel("\nEnter the label of the node to delete: ", nil)
	if err != nil {
		return err
	}

	if !s.set.Has(label) {
		return s.alert("The node does not exist in the tree!")
	}

	removeErr := s.set.Remove(label)
	if removeErr != nil {
		return removeErr
	}

	rebuildErr := s.rebuild()
	if rebuildErr != nil {
		return rebuildErr
	}

	return s.notice("Node deleted successfully!")
}
