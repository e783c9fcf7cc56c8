// main.go --  This file is part of gonao project.
//
//	gonao is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"gonao/basis"
	"gonao/nao"
)

var (
	overlapPath  string
	densityPath  string
	densityBPath string
	shellsPath   string
	cartBasis    bool
	noRestore    bool
	confOverride []string
)

var rootCmd = &cobra.Command{
	Use:   "gonao",
	Short: "Natural Atomic Orbitals from overlap and density matrices",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute NAO coefficients and occupations",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, ov := range confOverride {
			element, desc, ok := strings.Cut(ov, "=")
			if !ok {
				return fmt.Errorf("bad --conf %q, want element=description", ov)
			}
			if err := nao.Default.SetAtomConf(element, desc); err != nil {
				return err
			}
		}

		mol, err := loadMol(shellsPath, cartBasis)
		if err != nil {
			return err
		}
		n := mol.NAO()
		s, err := loadMatrix(overlapPath, n)
		if err != nil {
			return err
		}
		dms := []mat.Matrix{}
		d, err := loadMatrix(densityPath, n)
		if err != nil {
			return err
		}
		dms = append(dms, d)
		if densityBPath != "" {
			db, err := loadMatrix(densityBPath, n)
			if err != nil {
				return err
			}
			dms = append(dms, db)
		}

		c, err := nao.NAO(mol, nil, s, !noRestore, dms...)
		if err != nil {
			return err
		}

		// P = S·D·S for the occupation report.
		dsum := mat.NewDense(n, n, nil)
		for _, m := range dms {
			dsum.Add(dsum, m)
		}
		p := mat.NewDense(n, n, nil)
		p.Mul(s, dsum)
		p.Mul(p, s)

		fmt.Println("NAO occupations:")
		for i, o := range nao.Occupations(c, p) {
			fmt.Printf("  %4d  %12.6f\n", i, o)
		}
		fmt.Println("NAO coefficients:")
		printDense(c)
		return nil
	},
}

var confCmd = &cobra.Command{
	Use:   "conf [element...]",
	Short: "Show default core and core+valence shell configurations",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, el := range args {
			z, err := basis.Charge(el)
			if err != nil {
				return err
			}
			core, cv, err := nao.Default.Strings(z)
			if err != nil {
				return err
			}
			fmt.Printf("%-3s Z=%-3d core %s  core+valence %s\n", basis.Symbols[z], z, core, cv)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&overlapPath, "overlap", "s", "", "overlap matrix file")
	runCmd.Flags().StringVarP(&densityPath, "density", "d", "", "density matrix file")
	runCmd.Flags().StringVar(&densityBPath, "density-b", "", "second spin density matrix file")
	runCmd.Flags().StringVar(&shellsPath, "shells", "", "shell metadata file")
	runCmd.Flags().BoolVar(&cartBasis, "cart", false, "Cartesian angular components")
	runCmd.Flags().BoolVar(&noRestore, "no-restore", false, "skip the natural-character restoration pass")
	runCmd.Flags().StringArrayVar(&confOverride, "conf", nil, "configuration override, element=description")
	_ = runCmd.MarkFlagRequired("overlap")
	_ = runCmd.MarkFlagRequired("density")
	_ = runCmd.MarkFlagRequired("shells")
	rootCmd.AddCommand(runCmd, confCmd)
}

func printDense(d mat.Matrix) {
	fa := mat.Formatted(d, mat.Prefix("    "), mat.Squeeze())
	fmt.Printf("    %.8f\n", fa)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
