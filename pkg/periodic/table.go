package periodic

import "github.com/narasux/chemlab/pkg/model"

// 元素周期表前四周期（1 ~ 36 号元素），按原子序数升序排列，进程启动后不可修改
var elements = model.Elements{
	{Number: 1, Symbol: "H", Name: "Hydrogen", AtomicMass: 1.008, Category: model.CategoryNonmetal, Group: group(1), Period: 1, Block: model.BlockS, ElectronConfiguration: "1s¹"},
	{Number: 2, Symbol: "He", Name: "Helium", AtomicMass: 4.0026, Category: model.CategoryNobleGas, Group: group(18), Period: 1, Block: model.BlockS, ElectronConfiguration: "1s²"},
	{Number: 3, Symbol: "Li", Name: "Lithium", AtomicMass: 6.94, Category: model.CategoryAlkaliMetal, Group: group(1), Period: 2, Block: model.BlockS, ElectronConfiguration: "[He] 2s¹"},
	{Number: 4, Symbol: "Be", Name: "Beryllium", AtomicMass: 9.0122, Category: model.CategoryAlkalineEarth, Group: group(2), Period: 2, Block: model.BlockS, ElectronConfiguration: "[He] 2s²"},
	{Number: 5, Symbol: "B", Name: "Boron", AtomicMass: 10.81, Category: model.CategoryMetalloid, Group: group(13), Period: 2, Block: model.BlockP, ElectronConfiguration: "[He] 2s² 2p¹"},
	{Number: 6, Symbol: "C", Name: "Carbon", AtomicMass: 12.011, Category: model.CategoryNonmetal, Group: group(14), Period: 2, Block: model.BlockP, ElectronConfiguration: "[He] 2s² 2p²"},
	{Number: 7, Symbol: "N", Name: "Nitrogen", AtomicMass: 14.007, Category: model.CategoryNonmetal, Group: group(15), Period: 2, Block: model.BlockP, ElectronConfiguration: "[He] 2s² 2p³"},
	{Number: 8, Symbol: "O", Name: "Oxygen", AtomicMass: 15.999, Category: model.CategoryNonmetal, Group: group(16), Period: 2, Block: model.BlockP, ElectronConfiguration: "[He] 2s² 2p⁴"},
	{Number: 9, Symbol: "F", Name: "Fluorine", AtomicMass: 18.998, Category: model.CategoryHalogen, Group: group(17), Period: 2, Block: model.BlockP, ElectronConfiguration: "[He] 2s² 2p⁵"},
	{Number: 10, Symbol: "Ne", Name: "Neon", AtomicMass: 20.18, Category: model.CategoryNobleGas, Group: group(18), Period: 2, Block: model.BlockP, ElectronConfiguration: "[He] 2s² 2p⁶"},
	{Number: 11, Symbol: "Na", Name: "Sodium", AtomicMass: 22.99, Category: model.CategoryAlkaliMetal, Group: group(1), Period: 3, Block: model.BlockS, ElectronConfiguration: "[Ne] 3s¹"},
	{Number: 12, Symbol: "Mg", Name: "Magnesium", AtomicMass: 24.305, Category: model.CategoryAlkalineEarth, Group: group(2), Period: 3, Block: model.BlockS, ElectronConfiguration: "[Ne] 3s²"},
	{Number: 13, Symbol: "Al", Name: "Aluminum", AtomicMass: 26.982, Category: model.CategoryMetal, Group: group(13), Period: 3, Block: model.BlockP, ElectronConfiguration: "[Ne] 3s² 3p¹"},
	{Number: 14, Symbol: "Si", Name: "Silicon", AtomicMass: 28.085, Category: model.CategoryMetalloid, Group: group(14), Period: 3, Block: model.BlockP, ElectronConfiguration: "[Ne] 3s² 3p²"},
	{Number: 15, Symbol: "P", Name: "Phosphorus", AtomicMass: 30.974, Category: model.CategoryNonmetal, Group: group(15), Period: 3, Block: model.BlockP, ElectronConfiguration: "[Ne] 3s² 3p³"},
	{Number: 16, Symbol: "S", Name: "Sulfur", AtomicMass: 32.06, Category: model.CategoryNonmetal, Group: group(16), Period: 3, Block: model.BlockP, ElectronConfiguration: "[Ne] 3s² 3p⁴"},
	{Number: 17, Symbol: "Cl", Name: "Chlorine", AtomicMass: 35.45, Category: model.CategoryHalogen, Group: group(17), Period: 3, Block: model.BlockP, ElectronConfiguration: "[Ne] 3s² 3p⁵"},
	{Number: 18, Symbol: "Ar", Name: "Argon", AtomicMass: 39.948, Category: model.CategoryNobleGas, Group: group(18), Period: 3, Block: model.BlockP, ElectronConfiguration: "[Ne] 3s² 3p⁶"},
	{Number: 19, Symbol: "K", Name: "Potassium", AtomicMass: 39.098, Category: model.CategoryAlkaliMetal, Group: group(1), Period: 4, Block: model.BlockS, ElectronConfiguration: "[Ar] 4s¹"},
	{Number: 20, Symbol: "Ca", Name: "Calcium", AtomicMass: 40.078, Category: model.CategoryAlkalineEarth, Group: group(2), Period: 4, Block: model.BlockS, ElectronConfiguration: "[Ar] 4s²"},
	{Number: 21, Symbol: "Sc", Name: "Scandium", AtomicMass: 44.956, Category: model.CategoryTransitionMetal, Group: group(3), Period: 4, Block: model.BlockD, ElectronConfiguration: "[Ar] 4s² 3d¹"},
	{Number: 22, Symbol: "Ti", Name: "Titanium", AtomicMass: 47.867, Category: model.CategoryTransitionMetal, Group: group(4), Period: 4, Block: model.BlockD, ElectronConfiguration: "[Ar] 4s² 3d²"},
	{Number: 23, Symbol: "V", Name: "Vanadium", AtomicMass: 50.942, Category: model.CategoryTransitionMetal, Group: group(5), Period: 4, Block: model.BlockD, ElectronConfiguration: "[Ar] 4s² 3d³"},
	{Number: 24, Symbol: "Cr", Name: "Chromium", AtomicMass: 51.996, Category: model.CategoryTransitionMetal, Group: group(6), Period: 4, Block: model.BlockD, ElectronConfiguration: "[Ar] 4s¹ 3d⁵"},
	{Number: 25, Symbol: "Mn", Name: "Manganese", AtomicMass: 54.938, Category: model.CategoryTransitionMetal, Group: group(7), Period: 4, Block: model.BlockD, ElectronConfiguration: "[Ar] 4s² 3d⁵"},
	{Number: 26, Symbol: "Fe", Name: "Iron", AtomicMass: 55.845, Category: model.CategoryTransitionMetal, Group: group(8), Period: 4, Block: model.BlockD, ElectronConfiguration: "[Ar] 4s² 3d⁶"},
	{Number: 27, Symbol: "Co", Name: "Cobalt", AtomicMass: 58.933, Category: model.CategoryTransitionMetal, Group: group(9), Period: 4, Block: model.BlockD, ElectronConfiguration: "[Ar] 4s² 3d⁷"},
	{Number: 28, Symbol: "Ni", Name: "Nickel", AtomicMass: 58.693, Category: model.CategoryTransitionMetal, Group: group(10), Period: 4, Block: model.BlockD, ElectronConfiguration: "[Ar] 4s² 3d⁸"},
	{Number: 29, Symbol: "Cu", Name: "Copper", AtomicMass: 63.546, Category: model.CategoryTransitionMetal, Group: group(11), Period: 4, Block: model.BlockD, ElectronConfiguration: "[Ar] 4s¹ 3d¹⁰"},
	{Number: 30, Symbol: "Zn", Name: "Zinc", AtomicMass: 65.38, Category: model.CategoryTransitionMetal, Group: group(12), Period: 4, Block: model.BlockD, ElectronConfiguration: "[Ar] 4s² 3d¹⁰"},
	{Number: 31, Symbol: "Ga", Name: "Gallium", AtomicMass: 69.723, Category: model.CategoryMetal, Group: group(13), Period: 4, Block: model.BlockP, ElectronConfiguration: "[Ar] 4s² 3d¹⁰ 4p¹"},
	{Number: 32, Symbol: "Ge", Name: "Germanium", AtomicMass: 72.63, Category: model.CategoryMetalloid, Group: group(14), Period: 4, Block: model.BlockP, ElectronConfiguration: "[Ar] 4s² 3d¹⁰ 4p²"},
	{Number: 33, Symbol: "As", Name: "Arsenic", AtomicMass: 74.922, Category: model.CategoryMetalloid, Group: group(15), Period: 4, Block: model.BlockP, ElectronConfiguration: "[Ar] 4s² 3d¹⁰ 4p³"},
	{Number: 34, Symbol: "Se", Name: "Selenium", AtomicMass: 78.971, Category: model.CategoryNonmetal, Group: group(16), Period: 4, Block: model.BlockP, ElectronConfiguration: "[Ar] 4s² 3d¹⁰ 4p⁴"},
	{Number: 35, Symbol: "Br", Name: "Bromine", AtomicMass: 79.904, Category: model.CategoryHalogen, Group: group(17), Period: 4, Block: model.BlockP, ElectronConfiguration: "[Ar] 4s² 3d¹⁰ 4p⁵"},
	{Number: 36, Symbol: "Kr", Name: "Krypton", AtomicMass: 83.798, Category: model.CategoryNobleGas, Group: group(18), Period: 4, Block: model.BlockP, ElectronConfiguration: "[Ar] 4s² 3d¹⁰ 4p⁶"},
}

func group(g int) *int {
	return &g
}
