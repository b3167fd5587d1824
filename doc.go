/*
Fixed-width unsigned integer (aka register) with Verilog-like bit slicing.

	bf, _ := bitslice.New(5, 4)				// 0x0005 (5), bits 0101
	bf.Get(bitslice.NewRange(3, 1))			// 0x0002 (2)
	bf.SetBit(3, 1)							// 0x000D (13)
	bf.AddAlias("lower", 0, 1)
	bf.Get(bitslice.Alias("lower"))			// 0x0001 (1)
	bf.Add(bitslice.Uint64(4))				// 0x0001 (1), truncated to 4 bits

Ranges are inclusive and may be given in either order, [1:3] selects the same
bits as [3:1]. Overflow is truncated to the width, addressing a bit outside of
it is an error.
*/
package bitslice
