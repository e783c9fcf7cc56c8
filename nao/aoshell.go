// aoshell.go --  This file is part of gonao project.
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
package nao

import (
	"fmt"
	"regexp"
	"strings"

	"gonao/basis"
)

// defaultAOShell holds, per nuclear charge, the number of core and
// core+valence shells in each angular momentum channel. These are
// shell counts, not atomic configurations. The valence space for
// Li, Be may need to include 2p, Al..Cl may need 3d; use SetAtomConf
// to widen it.
var defaultAOShell = [119][2]string{
	{"0s0p0d0f", "0s0p0d0f"}, //   0  ghost
	{"0s0p0d0f", "1s0p0d0f"}, //   1  H
	{"0s0p0d0f", "1s0p0d0f"}, //   2  He
	{"1s0p0d0f", "2s0p0d0f"}, //   3  Li
	{"1s0p0d0f", "2s0p0d0f"}, //   4  Be
	{"1s0p0d0f", "2s1p0d0f"}, //   5  B
	{"1s0p0d0f", "2s1p0d0f"}, //   6  C
	{"1s0p0d0f", "2s1p0d0f"}, //   7  N
	{"1s0p0d0f", "2s1p0d0f"}, //   8  O
	{"1s0p0d0f", "2s1p0d0f"}, //   9  F
	{"1s0p0d0f", "2s1p0d0f"}, //  10  Ne
	{"2s1p0d0f", "3s1p0d0f"}, //  11  Na
	{"2s1p0d0f", "3s1p0d0f"}, //  12  Mg
	{"2s1p0d0f", "3s2p0d0f"}, //  13  Al
	{"2s1p0d0f", "3s2p0d0f"}, //  14  Si
	{"2s1p0d0f", "3s2p0d0f"}, //  15  P
	{"2s1p0d0f", "3s2p0d0f"}, //  16  S
	{"2s1p0d0f", "3s2p0d0f"}, //  17  Cl
	{"2s1p0d0f", "3s2p0d0f"}, //  18  Ar
	{"3s2p0d0f", "4s2p0d0f"}, //  19  K
	{"3s2p0d0f", "4s2p0d0f"}, //  20  Ca
	{"3s2p0d0f", "4s2p1d0f"}, //  21  Sc
	{"3s2p0d0f", "4s2p1d0f"}, //  22  Ti
	{"3s2p0d0f", "4s2p1d0f"}, //  23  V
	{"3s2p0d0f", "4s2p1d0f"}, //  24  Cr
	{"3s2p0d0f", "4s2p1d0f"}, //  25  Mn
	{"3s2p0d0f", "4s2p1d0f"}, //  26  Fe
	{"3s2p0d0f", "4s2p1d0f"}, //  27  Co
	{"3s2p0d0f", "4s2p1d0f"}, //  28  Ni
	{"3s2p0d0f", "4s2p1d0f"}, //  29  Cu
	{"3s2p0d0f", "4s2p1d0f"}, //  30  Zn
	{"3s2p1d0f", "4s3p1d0f"}, //  31  Ga
	{"3s2p1d0f", "4s3p1d0f"}, //  32  Ge
	{"3s2p1d0f", "4s3p1d0f"}, //  33  As
	{"3s2p1d0f", "4s3p1d0f"}, //  34  Se
	{"3s2p1d0f", "4s3p1d0f"}, //  35  Br
	{"3s2p1d0f", "4s3p1d0f"}, //  36  Kr
	{"4s3p1d0f", "5s3p1d0f"}, //  37  Rb
	{"4s3p1d0f", "5s3p1d0f"}, //  38  Sr
	{"4s3p1d0f", "5s3p2d0f"}, //  39  Y
	{"4s3p1d0f", "5s3p2d0f"}, //  40  Zr
	{"4s3p1d0f", "5s3p2d0f"}, //  41  Nb
	{"4s3p1d0f", "5s3p2d0f"}, //  42  Mo
	{"4s3p1d0f", "5s3p2d0f"}, //  43  Tc
	{"4s3p1d0f", "5s3p2d0f"}, //  44  Ru
	{"4s3p1d0f", "5s3p2d0f"}, //  45  Rh
	{"4s3p1d0f", "4s3p2d0f"}, //  46  Pd
	{"4s3p1d0f", "5s3p2d0f"}, //  47  Ag
	{"4s3p1d0f", "5s3p2d0f"}, //  48  Cd
	{"4s3p2d0f", "5s4p2d0f"}, //  49  In
	{"4s3p2d0f", "5s4p2d0f"}, //  50  Sn
	{"4s3p2d0f", "5s4p2d0f"}, //  51  Sb
	{"4s3p2d0f", "5s4p2d0f"}, //  52  Te
	{"4s3p2d0f", "5s4p2d0f"}, //  53  I
	{"4s3p2d0f", "5s4p2d0f"}, //  54  Xe
	{"5s4p2d0f", "6s4p2d0f"}, //  55  Cs
	{"5s4p2d0f", "6s4p2d0f"}, //  56  Ba
	{"5s4p2d0f", "6s4p3d0f"}, //  57  La
	{"5s4p2d0f", "6s4p3d1f"}, //  58  Ce
	{"5s4p2d0f", "6s4p2d1f"}, //  59  Pr
	{"5s4p2d0f", "6s4p2d1f"}, //  60  Nd
	{"5s4p2d0f", "6s4p2d1f"}, //  61  Pm
	{"5s4p2d0f", "6s4p2d1f"}, //  62  Sm
	{"5s4p2d0f", "6s4p2d1f"}, //  63  Eu
	{"5s4p2d0f", "6s4p3d1f"}, //  64  Gd
	{"5s4p2d0f", "6s4p3d1f"}, //  65  Tb
	{"5s4p2d0f", "6s4p2d1f"}, //  66  Dy
	{"5s4p2d0f", "6s4p2d1f"}, //  67  Ho
	{"5s4p2d0f", "6s4p2d1f"}, //  68  Er
	{"5s4p2d0f", "6s4p2d1f"}, //  69  Tm
	{"5s4p2d0f", "6s4p2d1f"}, //  70  Yb
	{"5s4p2d1f", "6s4p3d1f"}, //  71  Lu
	{"5s4p2d1f", "6s4p3d1f"}, //  72  Hf
	{"5s4p2d1f", "6s4p3d1f"}, //  73  Ta
	{"5s4p2d1f", "6s4p3d1f"}, //  74  W
	{"5s4p2d1f", "6s4p3d1f"}, //  75  Re
	{"5s4p2d1f", "6s4p3d1f"}, //  76  Os
	{"5s4p2d1f", "6s4p3d1f"}, //  77  Ir
	{"5s4p2d1f", "6s4p3d1f"}, //  78  Pt
	{"5s4p2d1f", "6s4p3d1f"}, //  79  Au
	{"5s4p2d1f", "6s4p3d1f"}, //  80  Hg
	{"5s4p3d1f", "6s5p3d1f"}, //  81  Tl
	{"5s4p3d1f", "6s5p3d1f"}, //  82  Pb
	{"5s4p3d1f", "6s5p3d1f"}, //  83  Bi
	{"5s4p3d1f", "6s5p3d1f"}, //  84  Po
	{"5s4p3d1f", "6s5p3d1f"}, //  85  At
	{"5s4p3d1f", "6s5p3d1f"}, //  86  Rn
	{"6s5p3d1f", "7s5p3d1f"}, //  87  Fr
	{"6s5p3d1f", "7s5p3d1f"}, //  88  Ra
	{"6s5p3d1f", "7s5p4d1f"}, //  89  Ac
	{"6s5p3d1f", "7s5p4d1f"}, //  90  Th
	{"6s5p3d1f", "7s5p4d2f"}, //  91  Pa
	{"6s5p3d1f", "7s5p4d2f"}, //  92  U
	{"6s5p3d1f", "7s5p4d2f"}, //  93  Np
	{"6s5p3d1f", "7s5p3d2f"}, //  94  Pu
	{"6s5p3d1f", "7s5p3d2f"}, //  95  Am
	{"6s5p3d1f", "7s5p4d2f"}, //  96  Cm
	{"6s5p3d1f", "7s5p4d2f"}, //  97  Bk
	{"6s5p3d1f", "7s5p3d2f"}, //  98  Cf
	{"6s5p3d1f", "7s5p3d2f"}, //  99  Es
	{"6s5p3d1f", "7s5p3d2f"}, // 100  Fm
	{"6s5p3d1f", "7s5p3d2f"}, // 101  Md
	{"6s5p3d1f", "7s5p3d2f"}, // 102  No
	{"6s5p3d2f", "7s5p4d2f"}, // 103  Lr
	{"6s5p3d2f", "7s5p4d2f"}, // 104  Rf
	{"6s5p3d2f", "7s5p4d2f"}, // 105  Db
	{"6s5p3d2f", "7s5p4d2f"}, // 106  Sg
	{"6s5p3d2f", "7s5p4d2f"}, // 107  Bh
	{"6s5p3d2f", "7s5p4d2f"}, // 108  Hs
	{"6s5p3d2f", "7s5p4d2f"}, // 109  Mt
	{"6s5p3d2f", "7s5p4d2f"}, // 110  Ds
	{"6s5p3d2f", "7s5p4d2f"}, // 111  Rg
	{"6s5p3d2f", "7s5p4d2f"}, // 112  Cn
	{"6s5p4d2f", "7s6p4d2f"}, // 113  Nh
	{"6s5p4d2f", "7s6p4d2f"}, // 114  Fl
	{"6s5p4d2f", "7s6p4d2f"}, // 115  Mc
	{"6s5p4d2f", "7s6p4d2f"}, // 116  Lv
	{"6s3p4d2f", "7s6p4d2f"}, // 117  Ts
	{"6s3p4d2f", "7s6p4d2f"}, // 118  Og
}

// ConfStore is the per-element table of core and core+valence shell
// counts the classifier reads. Default is a process-wide instance; a
// NewConfStore result is isolated. Stores are safe for concurrent
// reads, but SetAtomConf must not race with an active classification;
// callers serialize overrides themselves.
type ConfStore struct {
	shells [119][2]string
}

// Default backs classification whenever no explicit store is given.
// SetAtomConf on it changes the defaults for the rest of the process.
var Default = NewConfStore()

// NewConfStore returns a store initialized with the built-in table.
func NewConfStore() *ConfStore {
	s := new(ConfStore)
	s.shells = defaultAOShell
	return s
}

var confPattern = regexp.MustCompile(`^([0-9][spdf])+$`)

// confCounts extracts the four per-channel counts from an "NsNpNdNf"
// table entry.
func confCounts(conf string) [4]int {
	var c [4]int
	for i := 0; i < 4; i++ {
		c[i] = int(conf[2*i] - '0')
	}
	return c
}

// Conf returns the core and core+valence shell counts per angular
// momentum channel (s, p, d, f) for nuclear charge z.
func (cs *ConfStore) Conf(z int) (core, cv [4]int, err error) {
	if z < 0 || z >= len(cs.shells) {
		return core, cv, fmt.Errorf("nao: nuclear charge %d outside the configuration table", z)
	}
	return confCounts(cs.shells[z][0]), confCounts(cs.shells[z][1]), nil
}

// Strings returns the raw table entry for nuclear charge z.
func (cs *ConfStore) Strings(z int) (core, cv string, err error) {
	if z < 0 || z >= len(cs.shells) {
		return "", "", fmt.Errorf("nao: nuclear charge %d outside the configuration table", z)
	}
	return cs.shells[z][0], cs.shells[z][1], nil
}

// SetAtomConf overwrites the table entry for an element for the
// lifetime of the store.
//
// With one description the core row is kept and the description sets
// the valence shells; with two, the first sets the core and the second
// the valence. A description is either shell counts such as "1s1d"
// (channels not named keep their current count), or one of the
// keywords "double p", "double d", "double f" (two valence shells of
// that type) and "polarize" (one shell of the first channel whose
// current core+valence count is zero). Valence counts are added on top
// of the core counts.
func (cs *ConfStore) SetAtomConf(element string, description ...string) error {
	z, err := basis.Charge(element)
	if err != nil {
		return err
	}

	toConf := func(desc string) (string, error) {
		d := strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(desc))
		switch {
		case strings.Contains(d, "doublep"):
			d = "2p"
		case strings.Contains(d, "doubled"):
			d = "2d"
		case strings.Contains(d, "doublef"):
			d = "2f"
		case strings.Contains(d, "polarize"):
			loc := strings.IndexByte(cs.shells[z][1], '0')
			if loc < 0 || loc+1 >= len(cs.shells[z][1]) {
				return "", fmt.Errorf("nao: no empty channel to polarize for %s (%s)", element, cs.shells[z][1])
			}
			d = "1" + string(cs.shells[z][1][loc+1])
		}
		if !confPattern.MatchString(d) {
			return "", fmt.Errorf("nao: unrecognized configuration description %q for %s", desc, element)
		}
		return d, nil
	}

	var cDesc, vDesc string
	switch len(description) {
	case 1:
		cDesc = cs.shells[z][0]
		if vDesc, err = toConf(description[0]); err != nil {
			return err
		}
	case 2:
		if cDesc, err = toConf(description[0]); err != nil {
			return err
		}
		if vDesc, err = toConf(description[1]); err != nil {
			return err
		}
	default:
		return fmt.Errorf("nao: SetAtomConf takes one or two descriptions, got %d", len(description))
	}

	ncore := confCounts(cs.shells[z][0])
	ncv := confCounts(cs.shells[z][1])
	for i, ch := range []string{"s", "p", "d", "f"} {
		if k := strings.Index(cDesc, ch); k > 0 {
			ncore[i] = int(cDesc[k-1] - '0')
		}
		if k := strings.Index(vDesc, ch); k > 0 {
			ncv[i] = ncore[i] + int(vDesc[k-1]-'0')
		}
	}
	cConf := fmt.Sprintf("%ds%dp%dd%df", ncore[0], ncore[1], ncore[2], ncore[3])
	cvConf := fmt.Sprintf("%ds%dp%dd%df", ncv[0], ncv[1], ncv[2], ncv[3])
	cs.shells[z] = [2]string{cConf, cvConf}
	OutputLogger.Printf("Update %s conf: core %s core+valence %s", element, cConf, cvConf)
	return nil
}
