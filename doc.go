// Obligatory // comment

/*
Package nconvert turns command-line text into typed Go values.  It is
the piece of an argument parser that decides whether "42", "1.234,5",
"Red", or a missing value can go into a field, and what the resulting
value is.

Tokenizing the command line, matching tokens to options, and finding
the fields to fill are left to the caller.  The caller hands over the
raw text for one field, a Descriptor of the field's type, whether the
field takes one value or many, and a Culture:

	describer := nconvert.NewDescriber(nconvert.WithEnum(Red, Green))
	target, err := describer.Describe(reflect.TypeOf([]int(nil)))
	outcome, err := nconvert.Convert(nconvert.Texts("1", "2", "3"), target, false, nconvert.Invariant)

The result is an Outcome: Success with a value, or Failure.  Failure
says nothing about why; the caller reports "invalid value for option X".
The error return is reserved for contract violations, mistakes in the
calling library such as a scalar request with two values or a sequence
descriptor without an element type.  Use IsContractViolation to tell
them apart from other errors.

Target kinds:

	Boolean      bool; only "true" and "false" in any case
	Enumeration  types registered with WithEnum or WithEnumNames;
	             exact, case-sensitive member names only
	Optional     *T and Option[T]; a nil raw value is absent
	Primitive    strings, numbers, time.Time, time.Duration,
	             encoding.TextUnmarshaler implementations
	Sequence     []T and [N]T of any of the above

The text "true" or "false" converts to a bool whatever the target is.
A bool that lands in a non-bool field is caught by Assign or, inside
a sequence, turns the sequence into a Failure.

Numeric and date parsing follow the Culture.  Built-in cultures come
from the CLDR data in github.com/go-playground/locales; LookupCulture
accepts "de-CH" or "de_CH.UTF-8".  CultureFromEnv and CulturesFromFile
read a culture the caller points at.  Nothing is auto-detected.

All conversion is pure: no state is shared between calls and every
function is safe for concurrent use.

Debug tracing can be turned on with the debugNconvert build tag.
*/
package nconvert
