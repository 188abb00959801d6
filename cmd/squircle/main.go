// The squircle command prints the outlines of boxes with continuous rounded
// corners as SVG documents.
//
// Example usage:
//
//	squircle svg --width 200 --height 100 --radius 24 >box.svg
//
//	squircle svg --width 120 --height 120 --radii 40,0,40,0 --style circular
//
//	squircle svg --width 300 --height 80 --radius 40 --profile-file soft.toml
//
//	squircle profile capsule
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"honnef.co/go/squircle"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "squircle",
		Short:         "Compute outlines of rounded rectangles with continuous corners",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newSVGCommand(), newProfileCommand(), newClassifyCommand())
	return root
}

type boxFlags struct {
	width, height float64
	radius        float64
	radii         []float64
}

func (f *boxFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Float64Var(&f.width, "width", 100, "width of the box")
	flags.Float64Var(&f.height, "height", 100, "height of the box")
	flags.Float64Var(&f.radius, "radius", 0, "radius of all four corners")
	flags.Float64SliceVar(&f.radii, "radii", nil, "radii of the top left, top right, bottom right and bottom left corners")
	cmd.MarkFlagsMutuallyExclusive("radius", "radii")
}

func (f *boxFlags) box() (squircle.Size, squircle.Radii, error) {
	size := squircle.Sz(f.width, f.height)
	if !(f.width >= 0 && f.height >= 0) {
		return size, squircle.Radii{}, fmt.Errorf("invalid box size %s", size)
	}
	if f.radii == nil {
		return size, squircle.UniformRadii(f.radius), nil
	}
	if len(f.radii) != 4 {
		return size, squircle.Radii{}, fmt.Errorf("--radii needs 4 values, got %d", len(f.radii))
	}
	return size, squircle.Radii{
		TopLeft:     f.radii[0],
		TopRight:    f.radii[1],
		BottomRight: f.radii[2],
		BottomLeft:  f.radii[3],
	}, nil
}

type styleFlags struct {
	style       string
	profile     string
	profileFile string
}

func (f *styleFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.style, "style", "continuous", "corner style, continuous or circular")
	flags.StringVar(&f.profile, "profile", "rounded-rectangle", "predefined profile of continuous corners: rounded-rectangle, capsule or arc")
	flags.StringVar(&f.profileFile, "profile-file", "", "TOML file with a custom profile of continuous corners")
	cmd.MarkFlagsMutuallyExclusive("profile", "profile-file")
}

func (f *styleFlags) resolve(cmd *cobra.Command) (squircle.Style, error) {
	switch f.style {
	case "circular":
		for _, name := range []string{"profile", "profile-file"} {
			if cmd.Flags().Changed(name) {
				return nil, fmt.Errorf("--%s has no effect with circular corners", name)
			}
		}
		return squircle.Circular{}, nil
	case "continuous":
	default:
		return nil, fmt.Errorf("unknown style %q", f.style)
	}

	var prof squircle.Profile
	if f.profileFile != "" {
		var err error
		prof, err = squircle.LoadProfileFile(f.profileFile)
		if err != nil {
			return nil, err
		}
	} else {
		var ok bool
		prof, ok = squircle.ProfileByName(f.profile)
		if !ok {
			return nil, fmt.Errorf("unknown profile %q", f.profile)
		}
	}
	return squircle.Continuous{Profile: prof, CapsuleProfile: squircle.CapsuleProfile}, nil
}

func newSVGCommand() *cobra.Command {
	var (
		box       boxFlags
		style     styleFlags
		precision int
		tolerance float64
		fill      string
		pathOnly  bool
	)
	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Print the outline of a box as SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, radii, err := box.box()
			if err != nil {
				return err
			}
			st, err := style.resolve(cmd)
			if err != nil {
				return err
			}
			o := st.Outline(size, radii)
			p := o.Path
			if tolerance > 0 {
				p = p.Lower(tolerance)
			}
			opts := squircle.SVGOptions{MaxPrecision: precision}
			w := cmd.OutOrStdout()
			if pathOnly {
				if err := p.WriteSVG(w, opts); err != nil {
					return fmt.Errorf("couldn't write path: %w", err)
				}
				_, err := fmt.Fprintln(w)
				return err
			}
			return writeDocument(w, size, p, fill, opts)
		},
	}
	box.register(cmd)
	style.register(cmd)
	flags := cmd.Flags()
	flags.IntVar(&precision, "precision", 3, "maximum number of decimals; 0 prints shortest exact values")
	flags.Float64Var(&tolerance, "lower", 0, "approximate arcs with cubic Béziers within this tolerance; 0 keeps arcs")
	flags.StringVar(&fill, "fill", "black", "fill color")
	flags.BoolVar(&pathOnly, "path-only", false, "print only the path data")
	return cmd
}

func writeDocument(w io.Writer, size squircle.Size, p squircle.Path, fill string, opts squircle.SVGOptions) error {
	_, err := fmt.Fprintf(w, `<svg viewBox="0 0 %g %g" width="%g" height="%g" xmlns="http://www.w3.org/2000/svg">`+"\n",
		size.Width, size.Height, size.Width, size.Height)
	if err != nil {
		return fmt.Errorf("couldn't write document: %w", err)
	}
	if _, err := fmt.Fprintf(w, `<path fill="%s" d="`, fill); err != nil {
		return fmt.Errorf("couldn't write document: %w", err)
	}
	if err := p.WriteSVG(w, opts); err != nil {
		return fmt.Errorf("couldn't write path: %w", err)
	}
	if _, err := io.WriteString(w, "\" />\n</svg>\n"); err != nil {
		return fmt.Errorf("couldn't write document: %w", err)
	}
	return nil
}

func newProfileCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "profile [name]",
		Short: "Print a profile as TOML, along with its canonical Bézier",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var prof squircle.Profile
			switch {
			case file != "":
				var err error
				prof, err = squircle.LoadProfileFile(file)
				if err != nil {
					return err
				}
			case len(args) == 1:
				var ok bool
				prof, ok = squircle.ProfileByName(args[0])
				if !ok {
					return fmt.Errorf("unknown profile %q", args[0])
				}
			default:
				prof = squircle.RoundedRectangleProfile
			}
			w := cmd.OutOrStdout()
			if err := prof.WriteTOML(w); err != nil {
				return err
			}
			c := prof.Bezier()
			var sb strings.Builder
			for i, pt := range []squircle.Point{c.P0, c.P1, c.P2, c.P3} {
				fmt.Fprintf(&sb, "# P%d = %s\n", i, pt)
			}
			fmt.Fprintf(&sb, "# end curvature = %g\n", c.Curvature(1))
			_, err := io.WriteString(w, sb.String())
			return err
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "TOML file to read the profile from")
	return cmd
}

func newClassifyCommand() *cobra.Command {
	var box boxFlags
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Print which construction a box's outline uses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, radii, err := box.box()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), squircle.Classify(size, radii))
			return err
		},
	}
	box.register(cmd)
	return cmd
}
