package circuit

import "github.com/consensys/gnark/frontend"

// AssignedPlonkInstance is the in-circuit counterpart of the scalar
// parts of plonkstate.PlonkInstance. W_commitments are not represented
// here: folding them is deferred to the companion off-circuit curve;
// this circuit only needs them as transcript absorption inputs
// (handled directly in Circuit.Define).
type AssignedPlonkInstance struct {
	Instances  [][]frontend.Variable
	Challenges []frontend.Variable
}

// FoldInstances folds the accumulator (all[0]) and L incoming
// instances (all[1:]) columnwise over Instances and elementwise over
// Challenges, weighted by the Lagrange coefficients lj = L_j(γ), the
// in-circuit dual of protogalaxy's foldInstances.
func FoldInstances(api frontend.API, all []AssignedPlonkInstance, lj []frontend.Variable) AssignedPlonkInstance {
	ncols := len(all[0].Instances)
	newInstances := make([][]frontend.Variable, ncols)
	for c := 0; c < ncols; c++ {
		nrows := len(all[0].Instances[c])
		newInstances[c] = make([]frontend.Variable, nrows)
		for r := 0; r < nrows; r++ {
			var acc frontend.Variable = 0
			for j, inst := range all {
				acc = api.Add(acc, api.Mul(lj[j], inst.Instances[c][r]))
			}
			newInstances[c][r] = acc
		}
	}

	nchal := len(all[0].Challenges)
	newChallenges := make([]frontend.Variable, nchal)
	for i := 0; i < nchal; i++ {
		var acc frontend.Variable = 0
		for j, inst := range all {
			acc = api.Add(acc, api.Mul(lj[j], inst.Challenges[i]))
		}
		newChallenges[i] = acc
	}

	return AssignedPlonkInstance{Instances: newInstances, Challenges: newChallenges}
}
