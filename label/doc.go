package label

/*

# Switch label algebra

A label is a 64 bit source route. Reading from the least significant end, each
hop contributes a director: a small variable width integer that selects the
outgoing interface at that hop, tagged with a few prefix bits naming the form
it was written in. Above the last director sits a single set bit, the marker,
and everything above the marker is zero padding.

	 MSB                                                    LSB
	+---------------+---+------------+-----------+------------+
	| 0 0 0 ... 0 0 | 1 | director N |    ...    | director 1 |
	+---------------+---+------------+-----------+------------+
	    padding   marker

A switch consumes director 1, shifts the label right by its width and forwards
the packet. Because the marker travels with the label, the receiving end can
always find where the route ends.

## Encoding schemes

Each node advertises an encoding scheme: an ordered list of forms. A form is a
(bitCount, prefix, prefixLen) triple. The low prefixLen bits of a label say
which form the next director uses, and the bitCount bits above them hold its
value. Five schemes are in use and are exposed as the read only catalogue F4,
F8, V48, V358 and V37.

## Splicing

Splicing two labels concatenates their payloads (everything below the marker)
under a single marker. If the result would need 60 or more significant bits
the splice returns ErrorLabel, the all ones label, rather than an error. Route
computation treats ErrorLabel as an ordinary, if unusable, outcome.

## Bit numbering

Bits vectors use index 0 for the most significant bit and index 63 for the
least significant, which matches the textual form where the first hex digit is
the most significant nibble. Internally all arithmetic is on uint64.

## Burden of knowledge

Like the other primitive packages here, these functions do not validate
scheme well formedness. Forms within a scheme are assumed to be a complete,
unambiguous prefix code.

*/
