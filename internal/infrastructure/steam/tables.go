package steam

// saturationRow is one line of the pressure-indexed saturation table.
// Units: kPa, °C, m³/kg, kJ/kg, kJ/kg·K.
type saturationRow struct {
	P  float64
	T  float64
	Vf float64
	Vg float64
	Hf float64
	Hg float64
	Sf float64
	Sg float64
}

// superheatedRow is one line of a superheated block.
type superheatedRow struct {
	T float64
	V float64
	H float64
	S float64
}

// superheatedBlock holds the superheated rows at one pressure.
// The first row is the saturated vapor state at that pressure.
type superheatedBlock struct {
	P    float64
	Rows []superheatedRow
}

// saturationTable is ordered by pressure; T, hf and sf increase with it.
var saturationTable = []saturationRow{
	{P: 1, T: 6.97, Vf: 0.001000, Vg: 129.19, Hf: 29.30, Hg: 2513.7, Sf: 0.1059, Sg: 8.9749},
	{P: 1.5, T: 13.02, Vf: 0.001001, Vg: 87.964, Hf: 54.69, Hg: 2524.7, Sf: 0.1956, Sg: 8.8270},
	{P: 2, T: 17.50, Vf: 0.001001, Vg: 66.990, Hf: 73.43, Hg: 2532.9, Sf: 0.2606, Sg: 8.7227},
	{P: 2.5, T: 21.08, Vf: 0.001002, Vg: 54.242, Hf: 88.42, Hg: 2539.4, Sf: 0.3118, Sg: 8.6421},
	{P: 3, T: 24.08, Vf: 0.001003, Vg: 45.654, Hf: 100.98, Hg: 2544.8, Sf: 0.3543, Sg: 8.5765},
	{P: 4, T: 28.96, Vf: 0.001004, Vg: 34.791, Hf: 121.39, Hg: 2553.7, Sf: 0.4224, Sg: 8.4734},
	{P: 5, T: 32.87, Vf: 0.001005, Vg: 28.185, Hf: 137.75, Hg: 2560.7, Sf: 0.4762, Sg: 8.3938},
	{P: 7.5, T: 40.29, Vf: 0.001008, Vg: 19.233, Hf: 168.75, Hg: 2574.0, Sf: 0.5763, Sg: 8.2501},
	{P: 8, T: 41.51, Vf: 0.0010084, Vg: 18.10, Hf: 173.88, Hg: 2577.0, Sf: 0.5926, Sg: 8.2287},
	{P: 10, T: 45.81, Vf: 0.001010, Vg: 14.670, Hf: 191.81, Hg: 2583.9, Sf: 0.6492, Sg: 8.1488},
	{P: 15, T: 53.97, Vf: 0.001014, Vg: 10.020, Hf: 225.94, Hg: 2598.3, Sf: 0.7549, Sg: 8.0071},
	{P: 20, T: 60.06, Vf: 0.001017, Vg: 7.6481, Hf: 251.42, Hg: 2608.9, Sf: 0.8320, Sg: 7.9073},
	{P: 25, T: 64.96, Vf: 0.001020, Vg: 6.2034, Hf: 271.96, Hg: 2617.5, Sf: 0.8932, Sg: 7.8302},
	{P: 30, T: 69.09, Vf: 0.001022, Vg: 5.2287, Hf: 289.27, Hg: 2624.6, Sf: 0.9441, Sg: 7.7675},
	{P: 40, T: 75.86, Vf: 0.001026, Vg: 3.9933, Hf: 317.62, Hg: 2636.1, Sf: 1.0261, Sg: 7.6691},
	{P: 50, T: 81.32, Vf: 0.001030, Vg: 3.2403, Hf: 340.54, Hg: 2645.2, Sf: 1.0912, Sg: 7.5931},
	{P: 75, T: 91.76, Vf: 0.001037, Vg: 2.2172, Hf: 384.44, Hg: 2662.4, Sf: 1.2132, Sg: 7.4558},
	{P: 100, T: 99.61, Vf: 0.001043, Vg: 1.6941, Hf: 417.51, Hg: 2675.0, Sf: 1.3028, Sg: 7.3588},
	{P: 125, T: 105.97, Vf: 0.001048, Vg: 1.3750, Hf: 444.36, Hg: 2684.9, Sf: 1.3741, Sg: 7.2841},
	{P: 150, T: 111.35, Vf: 0.001053, Vg: 1.1594, Hf: 467.13, Hg: 2693.1, Sf: 1.4337, Sg: 7.2231},
	{P: 175, T: 116.04, Vf: 0.001057, Vg: 1.0037, Hf: 487.01, Hg: 2700.2, Sf: 1.4850, Sg: 7.1716},
	{P: 200, T: 120.21, Vf: 0.001061, Vg: 0.88578, Hf: 504.70, Hg: 2706.3, Sf: 1.5302, Sg: 7.1270},
	{P: 225, T: 123.97, Vf: 0.001064, Vg: 0.79329, Hf: 520.71, Hg: 2711.7, Sf: 1.5706, Sg: 7.0877},
	{P: 250, T: 127.41, Vf: 0.001067, Vg: 0.71873, Hf: 535.35, Hg: 2716.5, Sf: 1.6072, Sg: 7.0525},
	{P: 275, T: 130.58, Vf: 0.001070, Vg: 0.65732, Hf: 548.86, Hg: 2720.9, Sf: 1.6408, Sg: 7.0207},
	{P: 300, T: 133.52, Vf: 0.001073, Vg: 0.60582, Hf: 561.43, Hg: 2724.9, Sf: 1.6717, Sg: 6.9917},
	{P: 325, T: 136.27, Vf: 0.001076, Vg: 0.56199, Hf: 573.19, Hg: 2728.6, Sf: 1.7005, Sg: 6.9650},
	{P: 350, T: 138.86, Vf: 0.001079, Vg: 0.52422, Hf: 584.26, Hg: 2732.0, Sf: 1.7274, Sg: 6.9402},
	{P: 375, T: 141.30, Vf: 0.001081, Vg: 0.49133, Hf: 594.73, Hg: 2735.1, Sf: 1.7526, Sg: 6.9171},
	{P: 400, T: 143.61, Vf: 0.001084, Vg: 0.46242, Hf: 604.66, Hg: 2738.1, Sf: 1.7765, Sg: 6.8955},
	{P: 450, T: 147.90, Vf: 0.001088, Vg: 0.41392, Hf: 623.14, Hg: 2743.4, Sf: 1.8205, Sg: 6.8561},
	{P: 500, T: 151.83, Vf: 0.001093, Vg: 0.37483, Hf: 640.09, Hg: 2748.1, Sf: 1.8604, Sg: 6.8207},
	{P: 550, T: 155.46, Vf: 0.001097, Vg: 0.34261, Hf: 655.77, Hg: 2752.4, Sf: 1.8970, Sg: 6.7886},
	{P: 600, T: 158.83, Vf: 0.001101, Vg: 0.31560, Hf: 670.38, Hg: 2756.2, Sf: 1.9308, Sg: 6.7593},
	{P: 650, T: 161.98, Vf: 0.001104, Vg: 0.29260, Hf: 684.08, Hg: 2759.6, Sf: 1.9623, Sg: 6.7322},
	{P: 700, T: 164.95, Vf: 0.001108, Vg: 0.27278, Hf: 697.00, Hg: 2762.8, Sf: 1.9918, Sg: 6.7071},
	{P: 750, T: 167.75, Vf: 0.001111, Vg: 0.25552, Hf: 709.24, Hg: 2765.7, Sf: 2.0195, Sg: 6.6837},
	{P: 800, T: 170.41, Vf: 0.001115, Vg: 0.24035, Hf: 720.87, Hg: 2768.3, Sf: 2.0457, Sg: 6.6616},
	{P: 850, T: 172.94, Vf: 0.001118, Vg: 0.22690, Hf: 731.95, Hg: 2770.8, Sf: 2.0705, Sg: 6.6409},
	{P: 900, T: 175.35, Vf: 0.001121, Vg: 0.21489, Hf: 742.56, Hg: 2773.0, Sf: 2.0941, Sg: 6.6213},
	{P: 950, T: 177.66, Vf: 0.001124, Vg: 0.20411, Hf: 752.74, Hg: 2775.2, Sf: 2.1166, Sg: 6.6027},
	{P: 1000, T: 179.88, Vf: 0.001127, Vg: 0.19436, Hf: 762.51, Hg: 2777.1, Sf: 2.1381, Sg: 6.5850},
	{P: 1100, T: 184.06, Vf: 0.001133, Vg: 0.17745, Hf: 781.03, Hg: 2780.7, Sf: 2.1785, Sg: 6.5520},
	{P: 1200, T: 187.96, Vf: 0.001138, Vg: 0.16326, Hf: 798.33, Hg: 2783.8, Sf: 2.2159, Sg: 6.5217},
	{P: 1300, T: 191.60, Vf: 0.001144, Vg: 0.15119, Hf: 814.59, Hg: 2786.5, Sf: 2.2508, Sg: 6.4936},
	{P: 1400, T: 195.04, Vf: 0.001149, Vg: 0.14078, Hf: 829.96, Hg: 2788.9, Sf: 2.2835, Sg: 6.4675},
	{P: 1500, T: 198.29, Vf: 0.001154, Vg: 0.13171, Hf: 844.55, Hg: 2791.0, Sf: 2.3143, Sg: 6.4430},
	{P: 1750, T: 205.72, Vf: 0.001166, Vg: 0.11344, Hf: 878.16, Hg: 2795.2, Sf: 2.3844, Sg: 6.3877},
	{P: 2000, T: 212.38, Vf: 0.001177, Vg: 0.099585, Hf: 908.47, Hg: 2798.3, Sf: 2.4467, Sg: 6.3390},
	{P: 2250, T: 218.41, Vf: 0.001187, Vg: 0.088715, Hf: 936.21, Hg: 2800.5, Sf: 2.5029, Sg: 6.2954},
	{P: 2500, T: 223.95, Vf: 0.001197, Vg: 0.079958, Hf: 961.87, Hg: 2801.9, Sf: 2.5542, Sg: 6.2558},
	{P: 3000, T: 233.85, Vf: 0.001217, Vg: 0.066671, Hf: 1008.3, Hg: 2803.2, Sf: 2.6454, Sg: 6.1856},
	{P: 3500, T: 242.56, Vf: 0.001235, Vg: 0.057059, Hf: 1049.7, Hg: 2802.5, Sf: 2.7253, Sg: 6.1244},
	{P: 4000, T: 250.35, Vf: 0.001252, Vg: 0.049779, Hf: 1087.4, Hg: 2800.8, Sf: 2.7966, Sg: 6.0696},
	{P: 5000, T: 263.94, Vf: 0.001286, Vg: 0.039448, Hf: 1154.5, Hg: 2794.2, Sf: 2.9207, Sg: 5.9737},
	{P: 6000, T: 275.59, Vf: 0.001319, Vg: 0.032449, Hf: 1213.9, Hg: 2784.6, Sf: 3.0275, Sg: 5.8902},
	{P: 7000, T: 285.83, Vf: 0.001352, Vg: 0.027378, Hf: 1267.7, Hg: 2772.6, Sf: 3.1220, Sg: 5.8148},
	{P: 8000, T: 295.01, Vf: 0.001384, Vg: 0.023525, Hf: 1317.1, Hg: 2758.7, Sf: 3.2077, Sg: 5.7450},
	{P: 9000, T: 303.35, Vf: 0.001418, Vg: 0.020489, Hf: 1363.1, Hg: 2742.9, Sf: 3.2866, Sg: 5.6791},
	{P: 10000, T: 311.00, Vf: 0.001452, Vg: 0.018028, Hf: 1407.8, Hg: 2725.5, Sf: 3.3603, Sg: 5.6159},
	{P: 11000, T: 318.08, Vf: 0.001488, Vg: 0.015988, Hf: 1450.2, Hg: 2706.3, Sf: 3.4299, Sg: 5.5544},
	{P: 12000, T: 324.68, Vf: 0.001526, Vg: 0.014264, Hf: 1491.5, Hg: 2685.6, Sf: 3.4964, Sg: 5.4939},
	{P: 13000, T: 330.85, Vf: 0.001566, Vg: 0.012781, Hf: 1532.0, Hg: 2663.3, Sf: 3.5606, Sg: 5.4336},
	{P: 14000, T: 336.67, Vf: 0.001610, Vg: 0.011487, Hf: 1571.9, Hg: 2638.8, Sf: 3.6232, Sg: 5.3728},
	{P: 15000, T: 342.16, Vf: 0.001657, Vg: 0.010341, Hf: 1610.3, Hg: 2610.8, Sf: 3.6848, Sg: 5.3108},
	{P: 16000, T: 347.36, Vf: 0.001710, Vg: 0.009312, Hf: 1650.5, Hg: 2581.3, Sf: 3.7461, Sg: 5.2457},
	{P: 17000, T: 352.29, Vf: 0.001770, Vg: 0.008374, Hf: 1691.7, Hg: 2548.1, Sf: 3.8082, Sg: 5.1778},
	{P: 18000, T: 356.99, Vf: 0.001840, Vg: 0.007504, Hf: 1734.8, Hg: 2510.5, Sf: 3.8720, Sg: 5.1039},
	{P: 19000, T: 361.47, Vf: 0.001926, Vg: 0.006677, Hf: 1778.2, Hg: 2465.1, Sf: 3.9396, Sg: 5.0202},
	{P: 20000, T: 365.75, Vf: 0.002038, Vg: 0.005862, Hf: 1826.6, Hg: 2410.4, Sf: 4.0146, Sg: 4.9310},
}

// superheatedTable is ordered by pressure; rows within a block by temperature.
var superheatedTable = []superheatedBlock{
	{P: 5, Rows: []superheatedRow{
		{T: 32.87, V: 28.185, H: 2560.7, S: 8.3938},
		{T: 50, V: 29.782, H: 2594.3, S: 8.4982},
		{T: 100, V: 34.418, H: 2688.6, S: 8.7722},
		{T: 150, V: 39.042, H: 2783.7, S: 9.0129},
		{T: 200, V: 43.661, H: 2880.1, S: 9.2286},
		{T: 250, V: 48.280, H: 2977.9, S: 9.4254},
		{T: 300, V: 52.897, H: 3077.0, S: 9.6066},
		{T: 400, V: 62.131, H: 3280.2, S: 9.9334},
		{T: 500, V: 71.363, H: 3489.8, S: 10.2238},
		{T: 600, V: 80.594, H: 3706.4, S: 10.4871},
		{T: 700, V: 89.824, H: 3930.0, S: 10.7296},
	}},
	{P: 10, Rows: []superheatedRow{
		{T: 45.81, V: 14.670, H: 2583.9, S: 8.1488},
		{T: 50, V: 14.867, H: 2592.0, S: 8.1741},
		{T: 100, V: 17.196, H: 2687.5, S: 8.4489},
		{T: 150, V: 19.513, H: 2783.0, S: 8.6893},
		{T: 200, V: 21.826, H: 2879.6, S: 8.9049},
		{T: 250, V: 24.136, H: 2977.5, S: 9.1015},
		{T: 300, V: 26.446, H: 3076.7, S: 9.2827},
		{T: 400, V: 31.063, H: 3280.0, S: 9.6094},
		{T: 500, V: 35.680, H: 3489.7, S: 9.8998},
		{T: 600, V: 40.296, H: 3706.3, S: 10.1631},
		{T: 700, V: 44.911, H: 3929.9, S: 10.4056},
	}},
	{P: 100, Rows: []superheatedRow{
		{T: 99.61, V: 1.6941, H: 2675.0, S: 7.3588},
		{T: 100, V: 1.6959, H: 2675.8, S: 7.3610},
		{T: 150, V: 1.9367, H: 2776.6, S: 7.6148},
		{T: 200, V: 2.1724, H: 2875.5, S: 7.8356},
		{T: 250, V: 2.4062, H: 2974.5, S: 8.0346},
		{T: 300, V: 2.6389, H: 3074.5, S: 8.2172},
		{T: 400, V: 3.1027, H: 3278.6, S: 8.5452},
		{T: 500, V: 3.5655, H: 3488.7, S: 8.8362},
		{T: 600, V: 4.0279, H: 3705.6, S: 9.1010},
		{T: 700, V: 4.4900, H: 3929.4, S: 9.3440},
	}},
	{P: 500, Rows: []superheatedRow{
		{T: 151.83, V: 0.37483, H: 2748.1, S: 6.8207},
		{T: 200, V: 0.42503, H: 2855.8, S: 7.0610},
		{T: 250, V: 0.47443, H: 2961.0, S: 7.2725},
		{T: 300, V: 0.52261, H: 3064.6, S: 7.4614},
		{T: 350, V: 0.57015, H: 3168.1, S: 7.6346},
		{T: 400, V: 0.61731, H: 3272.4, S: 7.7956},
		{T: 500, V: 0.71095, H: 3484.5, S: 8.0893},
		{T: 600, V: 0.80409, H: 3701.5, S: 8.3544},
		{T: 700, V: 0.89696, H: 3925.0, S: 8.5978},
	}},
	{P: 1000, Rows: []superheatedRow{
		{T: 179.88, V: 0.19437, H: 2777.1, S: 6.5850},
		{T: 200, V: 0.20602, H: 2828.3, S: 6.6956},
		{T: 250, V: 0.23275, H: 2943.1, S: 6.9265},
		{T: 300, V: 0.25799, H: 3051.6, S: 7.1246},
		{T: 350, V: 0.28250, H: 3158.2, S: 7.3029},
		{T: 400, V: 0.30661, H: 3264.5, S: 7.4670},
		{T: 500, V: 0.35411, H: 3479.1, S: 7.7642},
		{T: 600, V: 0.40111, H: 3698.6, S: 8.0311},
		{T: 700, V: 0.44783, H: 3923.8, S: 8.2755},
	}},
	{P: 2000, Rows: []superheatedRow{
		{T: 212.38, V: 0.09959, H: 2798.3, S: 6.3390},
		{T: 225, V: 0.10381, H: 2836.1, S: 6.4160},
		{T: 250, V: 0.11150, H: 2903.3, S: 6.5475},
		{T: 300, V: 0.12551, H: 3024.2, S: 6.7684},
		{T: 350, V: 0.13860, H: 3137.7, S: 6.9583},
		{T: 400, V: 0.15122, H: 3248.4, S: 7.1292},
		{T: 500, V: 0.17568, H: 3468.3, S: 7.4337},
		{T: 600, V: 0.19962, H: 3690.5, S: 7.7043},
		{T: 700, V: 0.22326, H: 3917.2, S: 7.9509},
	}},
	{P: 4000, Rows: []superheatedRow{
		{T: 250.35, V: 0.04978, H: 2800.8, S: 6.0696},
		{T: 275, V: 0.05461, H: 2887.3, S: 6.2312},
		{T: 300, V: 0.05887, H: 2961.7, S: 6.3639},
		{T: 350, V: 0.06647, H: 3093.3, S: 6.5843},
		{T: 400, V: 0.07343, H: 3214.5, S: 6.7714},
		{T: 450, V: 0.08004, H: 3331.2, S: 6.9386},
		{T: 500, V: 0.08644, H: 3446.0, S: 7.0922},
		{T: 600, V: 0.09886, H: 3674.9, S: 7.3706},
		{T: 700, V: 0.11098, H: 3906.3, S: 7.6214},
	}},
	{P: 6000, Rows: []superheatedRow{
		{T: 275.59, V: 0.03245, H: 2784.6, S: 5.8902},
		{T: 300, V: 0.03619, H: 2885.6, S: 6.0703},
		{T: 350, V: 0.04225, H: 3043.9, S: 6.3357},
		{T: 400, V: 0.04742, H: 3178.3, S: 6.5432},
		{T: 450, V: 0.05217, H: 3302.9, S: 6.7219},
		{T: 500, V: 0.05667, H: 3423.1, S: 6.8826},
		{T: 600, V: 0.06527, H: 3658.8, S: 7.1693},
		{T: 700, V: 0.07355, H: 3894.3, S: 7.4247},
	}},
	{P: 8000, Rows: []superheatedRow{
		{T: 295.01, V: 0.02353, H: 2758.7, S: 5.7450},
		{T: 300, V: 0.02428, H: 2786.5, S: 5.7937},
		{T: 350, V: 0.02998, H: 2988.1, S: 6.1321},
		{T: 400, V: 0.03434, H: 3139.4, S: 6.3658},
		{T: 450, V: 0.03819, H: 3273.3, S: 6.5579},
		{T: 500, V: 0.04177, H: 3399.5, S: 6.7266},
		{T: 600, V: 0.04846, H: 3642.4, S: 7.0221},
		{T: 700, V: 0.05483, H: 3882.2, S: 7.2821},
	}},
	{P: 10000, Rows: []superheatedRow{
		{T: 311.00, V: 0.01803, H: 2725.5, S: 5.6159},
		{T: 325, V: 0.01987, H: 2810.3, S: 5.7596},
		{T: 350, V: 0.02244, H: 2924.0, S: 5.9459},
		{T: 400, V: 0.02644, H: 3097.5, S: 6.2141},
		{T: 450, V: 0.02978, H: 3242.4, S: 6.4219},
		{T: 500, V: 0.03281, H: 3375.1, S: 6.5995},
		{T: 600, V: 0.03838, H: 3625.8, S: 6.9045},
		{T: 700, V: 0.04362, H: 3870.0, S: 7.1700},
	}},
	{P: 12500, Rows: []superheatedRow{
		{T: 327.81, V: 0.01350, H: 2674.9, S: 5.4638},
		{T: 350, V: 0.01614, H: 2826.6, S: 5.7130},
		{T: 400, V: 0.02003, H: 3040.0, S: 6.0433},
		{T: 450, V: 0.02301, H: 3201.5, S: 6.2749},
		{T: 500, V: 0.02560, H: 3343.6, S: 6.4651},
		{T: 600, V: 0.03029, H: 3603.8, S: 6.7801},
		{T: 700, V: 0.03460, H: 3855.1, S: 7.0523},
	}},
	{P: 15000, Rows: []superheatedRow{
		{T: 342.16, V: 0.01034, H: 2610.8, S: 5.3108},
		{T: 350, V: 0.01148, H: 2693.1, S: 5.4438},
		{T: 400, V: 0.01566, H: 2975.7, S: 5.8819},
		{T: 450, V: 0.01845, H: 3157.9, S: 6.1434},
		{T: 500, V: 0.02081, H: 3310.8, S: 6.3480},
		{T: 600, V: 0.02492, H: 3581.3, S: 6.6796},
		{T: 700, V: 0.02862, H: 3840.1, S: 6.9605},
	}},
}
